// Package matcalc is a small matrix calculator: a dense-matrix engine plus a
// command line and a terminal grid editor on top of it.
//
// What is in here?
//
//	• Engine: Construct, Add, Sub, Mul, Transpose, Determinant, Inverse
//	• Errors: sentinel values, wrapped per operation, matched with errors.Is
//	• Front ends: one-shot CLI (-op/-a/-b) and an interactive editor (-i)
//
// Layout:
//
//	matrix/            Dense type, construction boundary, the algorithms
//	internal/calc/     operation names, text input, dispatch, inverse check
//	internal/config/   viper-backed settings (TOML file + MATCALC_* env)
//	internal/render/   lipgloss output and user-facing error messages
//	internal/tui/      bubbletea grid editor
//	cmd/matcalc/       the binary
//
// Quick example (display.color = false):
//
//	$ MATCALC_DISPLAY_COLOR=false matcalc -op mul -a "1,2;3,4" -b "5,6;7,8"
//	19  22
//	43  50
//
// Determinant is a cofactor expansion and Inverse never swaps rows, so this
// is a tool for small matrices, not a numerical library.
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
