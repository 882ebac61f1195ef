package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlas-ledger/core-go/core"
)

func listTransactions() error {
	qb := core.QueryBuilder{}
	if flagIsSet["filter"] {
		qb.SetFilter(filter)
	}
	if flagIsSet["start"] {
		qb.SetStartTime(startTime)
	}
	if flagIsSet["end"] {
		qb.SetEndTime(endTime)
	}
	if ascending {
		qb.SetAscending()
	}
	if flagIsSet["querytimeout"] {
		qb.SetTimeout(queryTimeout)
	}

	page, err := qb.Execute(context.Background(), Client)
	if err != nil {
		return err
	}
	for n := int64(1); ; n++ {
		for _, tx := range page.Items {
			data, err := json.MarshalIndent(tx, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		}
		if page.LastPage || (pages > 0 && n >= pages) {
			break
		}
		page, err = page.GetPage(context.Background(), Client)
		if err != nil {
			return err
		}
	}
	return nil
}
