package detectors

import (
	"playconf/pkg/detector/helpers"
	"playconf/pkg/detector/packagemanagers"
)

// DetectJavaScript detects JavaScript/TypeScript frameworks
func DetectJavaScript(fs FSReader) []Candidate {
	if !fs.Has("package.json") {
		return nil
	}

	var candidates []Candidate

	if c := detectNextJS(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectRemix(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectNuxt(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectAstro(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectSvelteKit(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectVite(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectAngular(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectNestJS(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectFastify(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectExpress(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	if c := detectNodeScripts(fs); c.Score > 0 {
		candidates = append(candidates, c)
	}

	return candidates
}

// devServerCommand runs the package.json dev script with a port flag. Projects
// without a dev-style script fall back to the start script with PORT set.
func devServerCommand(fs FSReader) CommandFunc {
	return func(port int) string {
		pm := packagemanagers.DetectJS(fs)
		script := helpers.GetDevServerScript(helpers.ParsePackageJSON(fs))
		if script == "" || script == "start" {
			return packagemanagers.JSStartCommand(pm, port)
		}
		return packagemanagers.JSScriptCommand(pm, script, port)
	}
}

// startCommand runs the package.json start script with PORT set
func startCommand(fs FSReader) CommandFunc {
	return func(port int) string {
		return packagemanagers.JSStartCommand(packagemanagers.DetectJS(fs), port)
	}
}

func detectNextJS(fs FSReader) Candidate {
	return NewDetectionBuilder("Next.js", "JavaScript/TypeScript", fs).
		CheckAnyFile([]string{"next.config.js", "next.config.mjs", "next.config.ts"}, ScoreBuildTool, "next.config").
		CheckDependency("package.json", `"next"`, ScoreDependency, "package.json has next").
		CheckAnyDir([]string{"pages", "app"}, ScoreMinorIndicator, "pages/ or app/ folder").
		Build(devServerCommand(fs))
}

func detectRemix(fs FSReader) Candidate {
	return NewDetectionBuilder("Remix", "JavaScript/TypeScript", fs).
		CheckAnyFile([]string{"remix.config.js", "remix.config.mjs"}, ScoreBuildTool, "remix.config").
		CheckDependency("package.json", `"@remix-run/`, ScoreDependency, "package.json has @remix-run").
		CheckDir("app/routes", ScoreMinorIndicator, "app/routes folder").
		Build(devServerCommand(fs))
}

func detectNuxt(fs FSReader) Candidate {
	return NewDetectionBuilder("Nuxt.js", "JavaScript/TypeScript", fs).
		CheckAnyFile([]string{"nuxt.config.js", "nuxt.config.ts"}, ScoreBuildTool, "nuxt.config").
		CheckDependency("package.json", `"nuxt"`, ScoreDependency, "package.json has nuxt").
		Build(devServerCommand(fs))
}

func detectAstro(fs FSReader) Candidate {
	return NewDetectionBuilder("Astro", "JavaScript/TypeScript", fs).
		CheckAnyFile([]string{"astro.config.mjs", "astro.config.ts", "astro.config.js"}, ScoreBuildTool, "astro.config").
		CheckDependency("package.json", `"astro"`, ScoreDependency, "package.json has astro").
		Build(devServerCommand(fs))
}

func detectSvelteKit(fs FSReader) Candidate {
	return NewDetectionBuilder("SvelteKit", "JavaScript/TypeScript", fs).
		CheckAnyFile([]string{"svelte.config.js", "svelte.config.ts"}, ScoreBuildTool, "svelte.config").
		CheckDependency("package.json", `"@sveltejs/kit"`, ScoreDependency, "package.json has @sveltejs/kit").
		CheckDir("src/routes", ScoreMinorIndicator, "src/routes folder").
		Build(devServerCommand(fs))
}

func detectVite(fs FSReader) Candidate {
	return NewDetectionBuilder("Vite", "JavaScript/TypeScript", fs).
		CheckAnyFile([]string{"vite.config.js", "vite.config.ts", "vite.config.mjs"}, ScoreConfigFile, "vite.config").
		CheckDependency("package.json", `"vite"`, ScoreMinorIndicator, "package.json has vite").
		Build(devServerCommand(fs))
}

func detectAngular(fs FSReader) Candidate {
	return NewDetectionBuilder("Angular", "JavaScript/TypeScript", fs).
		CheckFile("angular.json", ScoreBuildTool, "angular.json").
		CheckDependency("package.json", `"@angular/core"`, ScoreDependency, "package.json has @angular/core").
		Build(devServerCommand(fs))
}

func detectNestJS(fs FSReader) Candidate {
	return NewDetectionBuilder("NestJS", "JavaScript/TypeScript", fs).
		CheckFile("nest-cli.json", ScoreBuildTool, "nest-cli.json").
		CheckDependency("package.json", `"@nestjs/core"`, ScoreDependency, "package.json has @nestjs/core").
		Build(startCommand(fs))
}

func detectFastify(fs FSReader) Candidate {
	return NewDetectionBuilder("Fastify", "JavaScript/TypeScript", fs).
		CheckDependency("package.json", `"fastify"`, ScoreDependency, "package.json has fastify").
		CheckAnyFile([]string{"server.js", "app.js", "index.js", "server.ts"}, ScoreMinorIndicator, "server entry file").
		Build(startCommand(fs))
}

func detectExpress(fs FSReader) Candidate {
	return NewDetectionBuilder("Express.js", "JavaScript/TypeScript", fs).
		CheckDependency("package.json", `"express"`, ScoreDependency, "package.json has express").
		CheckAnyFile([]string{"server.js", "app.js", "index.js", "server.ts"}, ScoreMinorIndicator, "server entry file").
		Build(startCommand(fs))
}

// detectNodeScripts matches any package.json that can start a server
func detectNodeScripts(fs FSReader) Candidate {
	script := helpers.GetDevServerScript(helpers.ParsePackageJSON(fs))
	return NewDetectionBuilder("Node.js", "JavaScript/TypeScript", fs).
		CheckCondition(script != "", ScoreMinorIndicator, "package.json "+script+" script").
		Build(devServerCommand(fs))
}
