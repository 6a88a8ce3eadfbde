package core_test

import (
	"context"
	"fmt"
	"os"

	"github.com/coldscan/coldscan/pkg/core"
)

func Example() {
	dir, _ := os.MkdirTemp("", "coldscan-example")
	defer os.RemoveAll(dir)

	eng := core.New("signatures.json", core.Config{NoCache: true})
	report, err := eng.ScanFolderReport(context.Background(), dir)
	if err != nil {
		fmt.Println("scan failed:", err)
		return
	}
	fmt.Println(string(report))
	// Output: []
}
