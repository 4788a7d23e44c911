package game

import "github.com/go-gl/glfw/v3.3/glfw"

// ReadKeys polls the keyboard once per frame. Movement accepts both
// arrow keys and WASD.
func ReadKeys(w *glfw.Window) Keys {
	down := func(k glfw.Key) bool { return w.GetKey(k) == glfw.Press }
	return Keys{
		Left:    down(glfw.KeyLeft) || down(glfw.KeyA),
		Right:   down(glfw.KeyRight) || down(glfw.KeyD),
		Up:      down(glfw.KeyUp) || down(glfw.KeyW),
		Down:    down(glfw.KeyDown) || down(glfw.KeyS),
		Fire:    down(glfw.KeySpace),
		Missile: down(glfw.KeyX),
		Pause:   down(glfw.KeyP),
		Debug:   down(glfw.KeyC),
	}
}
