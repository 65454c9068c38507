package circuitcode_test

import (
	"fmt"

	"github.com/katalvlaran/circuitcode"
)

func Example() {
	docs, err := circuitcode.Encode("Hello")
	if err != nil {
		fmt.Println(err)
		return
	}
	msg, err := circuitcode.Decode(docs[0], docs[1], docs[2])
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(msg.Text)
	// Output: HELLO
}
