// Package assets resolves the fixed assets slide rendering depends on: the
// four-variant font set and the default background image.
//
// Assets live at fixed logical names. The embedded loader serves the Go font
// family and a built-in background, so a renderer always has a complete asset
// set without touching the filesystem. A filesystem loader can override any
// subset from a custom directory:
//
//	assets/
//	├── fonts/
//	│   ├── regular.ttf
//	│   ├── bold.ttf
//	│   ├── italic.ttf
//	│   └── bolditalic.ttf
//	└── backgrounds/
//	    └── default.png
//
// The Resolver combines both: custom files take precedence, anything missing
// falls back to the embedded set. A configured-but-unreadable asset is a
// fatal configuration error surfaced before any slide is rendered.
package assets
