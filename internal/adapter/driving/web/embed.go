package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet and page JS).
//
//go:embed static/*
var StaticFS embed.FS
