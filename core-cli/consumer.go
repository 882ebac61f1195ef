package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlas-ledger/core-go/core"
)

func consumer() error {
	ctx := context.Background()
	var con *core.Consumer
	var err error
	switch consumerAction {
	case "create":
		con, err = core.CreateConsumer(ctx, Client, alias, filter)
	case "get":
		con, err = getConsumer(ctx)
	case "update":
		con, err = getConsumer(ctx)
		if err != nil {
			break
		}
		con, err = con.Update(ctx, Client, after)
	}
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(con, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func getConsumer(ctx context.Context) (*core.Consumer, error) {
	if flagIsSet["id"] {
		return core.ConsumerByID(ctx, Client, id)
	}
	return core.ConsumerByAlias(ctx, Client, alias)
}
