package scaffold

// Server layout, relative to the invocation directory.
const (
	ServerDir       = "backend"
	ServerSourceDir = ServerDir + "/src"
	ServerEntry     = ServerSourceDir + "/index.ts"
	ServerTSConfig  = ServerDir + "/tsconfig.json"
	ServerManifest  = ServerDir + "/package.json"
)

// serverEntryTemplate is the Express entry point. It listens on $PORT and
// falls back to 5000.
const serverEntryTemplate = `import express from 'express';

const app = express();
const port = process.env.PORT || 5000;

app.use(express.json());

app.get('/', (req, res) => {
  res.json({ message: 'Welcome to the MERN API' });
});

app.listen(port, () => {
  console.log(` + "`Server running on port ${port}`" + `);
});`

const serverTSConfigTemplate = `{
  "compilerOptions": {
    "target": "ES6",
    "module": "commonjs",
    "outDir": "./dist",
    "rootDir": "./src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true
  },
  "include": ["src/**/*"],
  "exclude": ["node_modules"]
}`

// serverScripts are injected into the server manifest.
var serverScripts = []Script{
	{Name: "start", Command: "node dist/index.js"},
	{Name: "build", Command: "tsc"},
	{Name: "dev", Command: "nodemon --exec ts-node src/index.ts"},
}

// ServerStep returns the server provisioning step:
// source tree, entry point, npm manifest, runtime and dev dependencies,
// compiler configuration, and run scripts.
func ServerStep() *Step {
	return NewStep("backend", "📦 Setting up Backend...",
		EnsureDirectory{Path: ServerSourceDir},
		WriteFile{Path: ServerEntry, Content: serverEntryTemplate, Overwrite: true},
		RunIn(ServerDir, "npm", "init", "-y"),
		RunIn(ServerDir, "npm", "install", "express"),
		RunIn(ServerDir, "npm", "install", "-D", "typescript", "ts-node", "nodemon", "@types/node", "@types/express"),
		WriteFile{Path: ServerTSConfig, Content: serverTSConfigTemplate, Overwrite: true},
		PatchManifest{Path: ServerManifest, Scripts: serverScripts},
	)
}
