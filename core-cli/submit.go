package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/atlas-ledger/core-go/core"
)

// submit reads a signed transaction template as JSON from -file, or stdin
// when -file is "-" or unset, and submits it for block inclusion.
func submit() error {
	var data []byte
	var err error
	if file == "" || file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return err
	}

	tpl := new(core.Template)
	if err := json.Unmarshal(data, tpl); err != nil {
		return err
	}

	response, err := core.Submit(context.Background(), Client, tpl)
	if err != nil {
		return err
	}
	fmt.Println(response.ID)
	return nil
}
