// internal/component/input.go
package component

// Input — состояние ввода, снимаемое один раз за тик.
type Input struct {
	Left, Right, Up, Down bool
	PointerX, PointerY    float64
	Firing                bool
}
