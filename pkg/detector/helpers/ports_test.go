package helpers

import "testing"

func TestDetectPort(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		framework string
		want      int
	}{
		{
			name:  "nothing",
			files: map[string]string{"README.md": "hi"},
			want:  0,
		},
		{
			name:  "env file",
			files: map[string]string{".env": "# local\nexport PORT=\"4100\"\n"},
			want:  4100,
		},
		{
			name:  "e2e env file wins",
			files: map[string]string{".env": "PORT=4100", ".env.e2e": "PORT=4200"},
			want:  4200,
		},
		{
			name:  "procfile web process",
			files: map[string]string{"Procfile.dev": "css: bin/rails tailwindcss:watch\nweb: bin/rails server -p 3100\n"},
			want:  3100,
		},
		{
			name:  "package.json script flag",
			files: map[string]string{"package.json": `{"scripts": {"dev": "next dev --port=3333"}}`},
			want:  3333,
		},
		{
			name:      "puma config",
			files:     map[string]string{"config/puma.rb": `port ENV.fetch("PORT") { 3200 }`},
			framework: "Rails",
			want:      3200,
		},
		{
			name:      "vite config",
			files:     map[string]string{"vite.config.ts": "export default { server: { port: 5174 } }"},
			framework: "Vite",
			want:      5174,
		},
		{
			name:      "phoenix config",
			files:     map[string]string{"config/dev.exs": "http: [ip: {127, 0, 0, 1}, port: 4001]"},
			framework: "Phoenix",
			want:      4001,
		},
		{
			name:  "invalid port ignored",
			files: map[string]string{".env": "PORT=99999"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPort(writeFiles(t, tt.files), tt.framework); got != tt.want {
				t.Errorf("DetectPort() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractPortFromCommand(t *testing.T) {
	tests := []struct {
		command string
		want    int
	}{
		{"bin/rails server -p 3000", 3000},
		{"next dev --port 3001", 3001},
		{"astro dev --port=4321", 4321},
		{"gunicorn app:app --bind 0.0.0.0:8001", 8001},
		{"PORT=5000 node server.js", 5000},
		{"vite", 0},
	}

	for _, tt := range tests {
		if got := extractPortFromCommand(tt.command); got != tt.want {
			t.Errorf("extractPortFromCommand(%q) = %d, want %d", tt.command, got, tt.want)
		}
	}
}
