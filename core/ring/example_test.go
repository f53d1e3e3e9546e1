package ring_test

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/ring"
)

func Example() {
	storage := make([]byte, 5)
	r, err := ring.New(storage, len(storage))
	if err != nil {
		panic(err)
	}

	_ = r.Write([]byte{1, 2, 3, 4, 5})
	head, _ := r.Read(2)
	_ = r.Write([]byte{6, 7})
	rest, _ := r.Read(r.Len())
	fmt.Println(head, rest)

	_, err = r.GetByte()
	fmt.Println(api.StatusOf(err))
	// Output:
	// [1 2] [3 4 5 6 7]
	// no data
}
