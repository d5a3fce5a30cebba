package scaffold

// Client layout, relative to the invocation directory.
const (
	ClientDir            = "frontend"
	ClientTailwindConfig = ClientDir + "/tailwind.config.js"
	ClientPostCSSConfig  = ClientDir + "/postcss.config.js"
	ClientStylesheet     = ClientDir + "/src/index.css"
)

const tailwindConfigTemplate = `/** @type {import('tailwindcss').Config} */
export default {
  content: [
    "./index.html",
    "./src/**/*.{js,ts,jsx,tsx}",
  ],
  theme: {
    extend: {},
  },
  plugins: [],
}`

const postcssConfigTemplate = `export default {
  plugins: {
    '@tailwindcss/postcss': {},
    autoprefixer: {},
  },
}`

// stylesheetTemplate replaces the generator's default global stylesheet.
const stylesheetTemplate = `@tailwind base;
@tailwind components;
@tailwind utilities;`

// ClientStep returns the client provisioning step: a Vite React-TS app,
// its dependencies, Tailwind with PostCSS, and the Tailwind stylesheet.
func ClientStep() *Step {
	return NewStep("frontend", "💻 Setting up Frontend...",
		Run("npm", "create", "vite@latest", ClientDir, "--", "--template", "react-ts"),
		RunIn(ClientDir, "npm", "install"),
		RunIn(ClientDir, "npm", "install", "-D", "tailwindcss", "postcss", "autoprefixer", "@tailwindcss/postcss"),
		WriteFile{Path: ClientTailwindConfig, Content: tailwindConfigTemplate, Overwrite: true},
		WriteFile{Path: ClientPostCSSConfig, Content: postcssConfigTemplate, Overwrite: true},
		WriteFile{Path: ClientStylesheet, Content: stylesheetTemplate, Overwrite: true},
	)
}
