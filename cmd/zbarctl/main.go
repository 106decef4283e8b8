// Command zbarctl is an interactive console for the ean decoder: type a
// line of bar/space widths, see the decode result immediately. Useful for
// exercising the state machine against hand-crafted or captured width
// sequences without a camera attached.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/zkrige/zbar"
	"github.com/zkrige/zbar/ean"
)

func main() {
	reg := zbar.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("zbarctl: enter space-separated bar/space widths, 'reset' to clear, 'quit' to exit")
	fmt.Print("> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			fmt.Print("> ")
			continue
		case "quit", "exit":
			return
		case "reset":
			reg = zbar.New()
			fmt.Print("> ")
			continue
		}

		if err := feedLine(reg, line); err != nil {
			fmt.Println("error:", err)
		}
		fmt.Print("> ")
	}
}

// feedLine tokenizes line (shell-style, so quoting/escaping behave as a
// user expects) into alternating bar/space widths and feeds each one to
// reg, printing each completed symbol it sees.
func feedLine(reg *zbar.Registry, line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return err
	}

	for i, tok := range tokens {
		width, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return fmt.Errorf("width %q: %w", tok, err)
		}

		color := ean.Bar
		if i%2 == 1 {
			color = ean.Space
		}

		if sym := reg.ProcessEdge(uint(width), color); sym != ean.None && sym != ean.Partial {
			fmt.Printf("decoded: %s\n", sym)
		}
	}
	return nil
}
