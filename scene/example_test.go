package scene_test

import (
	"fmt"

	"github.com/katalvlaran/zplane/scene"
)

func ExampleParse() {
	s, err := scene.Parse([]byte(`
function: exp(z)
x: [-1, 1]
y: [-3, 3]
reim: im
steps: 10
points:
  - {name: origin, values: ["0"]}
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fig, err := s.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(fig.Len())
	// Output: 4
}
