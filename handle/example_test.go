package handle_test

import (
	"fmt"

	"github.com/wippyai/handleguard/handle"
)

func ExampleNew() {
	release := handle.ReleaseFunc[int](func(id int) error {
		fmt.Println("release", id)
		return nil
	})

	g := handle.New[int, handle.Zero[int]](7, release)
	g.Reset(9)
	fmt.Println("holding", g.Get())
	g.Close()
	// Output:
	// release 7
	// holding 9
	// release 9
}

func ExampleUnique_Move() {
	release := handle.ReleaseFunc[int](func(id int) error {
		fmt.Println("release", id)
		return nil
	})

	g := handle.New[int, handle.Zero[int]](5, release)
	h := g.Move()
	fmt.Println(g.Valid(), h.Valid())
	g.Close()
	h.Close()
	// Output:
	// false true
	// release 0
	// release 5
}

func ExampleDuplicable_Clone() {
	next := 100
	a := handle.NewDuplicable[int, handle.Zero[int]](1,
		func(id int) error {
			fmt.Println("release", id)
			return nil
		},
		func(int) (int, error) {
			next++
			return next, nil
		},
	)

	b, err := a.Clone()
	if err != nil {
		panic(err)
	}
	a.Close()
	b.Close()
	// Output:
	// release 1
	// release 101
}
