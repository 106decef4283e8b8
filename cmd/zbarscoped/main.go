// Command zbarscoped serves a small live-decode viewer: a browser opens a
// websocket, streams comma-separated "width,color" edge pairs, and gets
// back one line per completed symbol.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/net/websocket"

	"github.com/zkrige/zbar"
	"github.com/zkrige/zbar/ean"
)

var addr = flag.String("addr", ":8080", "listen address")

func main() {
	flag.Parse()

	http.HandleFunc("/", serveViewer)
	http.Handle("/scan", websocket.Handler(serveScan))

	log.Printf("zbarscoped listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// serveScan reads newline-delimited "width,color" pairs from the
// websocket and writes back one line per completed symbol (symbol halves
// reported as Partial are not written). Color is "B"
// for bar or "S" for space.
func serveScan(ws *websocket.Conn) {
	defer ws.Close()

	reg := zbar.New()
	scanner := bufio.NewScanner(ws)

	for scanner.Scan() {
		width, color, err := parseEdge(scanner.Text())
		if err != nil {
			fmt.Fprintf(ws, "error: %v\n", err)
			continue
		}

		if sym := reg.ProcessEdge(width, color); sym != ean.None && sym != ean.Partial {
			fmt.Fprintf(ws, "%s\n", sym)
		}
	}
}

func parseEdge(line string) (uint, ean.Color, error) {
	parts := strings.SplitN(strings.TrimSpace(line), ",", 2)
	if len(parts) != 2 {
		return 0, ean.Bar, fmt.Errorf("malformed edge %q", line)
	}

	width, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, ean.Bar, err
	}

	color := ean.Bar
	if strings.EqualFold(parts[1], "S") {
		color = ean.Space
	}
	return uint(width), color, nil
}

func serveViewer(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, viewerHTML)
}

const viewerHTML = `<!DOCTYPE html>
<html>
<head><title>zbarscoped</title></head>
<body>
<p>Connect to ws://&lt;host&gt;/scan and stream "width,color" edge lines.</p>
<pre id="log"></pre>
<script>
var ws = new WebSocket("ws://" + location.host + "/scan");
ws.onmessage = function(evt) {
	document.getElementById("log").textContent += evt.data + "\n";
};
</script>
</body>
</html>`
