package handlers

// @title Hackathon 2025 Demo API
// @version 1.0
// @description Small stateless REST endpoints behind the Hackathon 2025 demo page

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @tag.name messages
// @tag.description Greeting endpoints

// @tag.name images
// @tag.description Nature image lookup

// @tag.name math
// @tag.description Fibonacci numbers

// @tag.name system
// @tag.description Health checks
