// Command curvedemo generates random parametric space curves, evaluates
// them at an angle and reports statistics over the generated circles.
package main

func main() {
	Execute()
}
