package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/ordersdesk/orderboard/internal"
	"github.com/ordersdesk/orderboard/internal/model"
)

const usage = `commands:
  select <order-id>            show an order
  tab track|user|map           switch the detail tab
  ship <name;street;zip;region;country>  edit and save the shipping address
  add-order <customer;status;shippedAt>  create an order
  del-order                    delete the active order
  add-product <name;price;currency;qty>  add a line item
  del-product <product-id>     delete a line item
  search <text>                filter the sidebar
  refresh                      clear the sidebar filter
  find <text>                  filter the product table
  sort                         toggle the product-name sort
  quit`

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	client := NewDataClient(cfg.BackendAddress, sugaredLogger)
	view := NewConsoleView(os.Stdout, cfg.StaticMapKey)
	board := NewOrchestrator(client, view, sugaredLogger)

	ctx := context.Background()
	if err := board.InitialLoad(ctx); err != nil {
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(usage)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		cmd, arg := splitCommand(scanner.Text())
		switch cmd {
		case "":
		case "select":
			board.SelectOrder(ctx, arg)
		case "tab":
			board.SwitchTab(ctx, Tab(arg))
		case "ship":
			view.SetShipToForm(splitFields5(arg))
			board.SaveShippingAddress(ctx)
		case "add-order":
			view.SetOrderForm(parseOrderForm(arg))
			board.AddOrder(ctx)
		case "del-order":
			board.DeleteOrder(ctx)
		case "add-product":
			input, err := parseProductForm(arg)
			if err != nil {
				fmt.Println(err)
				fmt.Println(usage)
				continue
			}
			view.SetProductForm(input)
			board.AddProduct(ctx)
		case "del-product":
			board.DeleteProduct(ctx, arg)
		case "search":
			view.SetOrderFilter(arg)
			board.SearchOrders(ctx)
		case "refresh":
			view.SetOrderFilter("")
			board.RefreshOrderSearch(ctx)
		case "find":
			view.SetProductFilter(arg)
			board.SearchProducts()
		case "sort":
			board.SortProducts()
		case "quit", "exit":
			return
		default:
			fmt.Println(usage)
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func splitFields5(arg string) [5]string {
	var out [5]string
	for i, f := range strings.SplitN(arg, ";", 5) {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func parseOrderForm(arg string) model.OrderInput {
	fields := strings.Split(arg, ";")
	var i model.OrderInput
	if len(fields) > 0 {
		i.Summary.Customer = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		i.Summary.Status = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		i.Summary.ShippedAt = strings.TrimSpace(fields[2])
	}
	return i
}

func parseProductForm(arg string) (model.ProductInput, error) {
	fields := strings.Split(arg, ";")
	var i model.ProductInput
	var err error
	if len(fields) > 0 {
		i.Name = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		i.Price, err = decimal.NewFromString(strings.TrimSpace(fields[1]))
		if err != nil {
			return i, fmt.Errorf("bad price %q: %w", fields[1], err)
		}
	}
	if len(fields) > 2 {
		i.Currency = strings.TrimSpace(fields[2])
	}
	if len(fields) > 3 {
		i.Quantity, err = strconv.Atoi(strings.TrimSpace(fields[3]))
		if err != nil {
			return i, fmt.Errorf("bad quantity %q: %w", fields[3], err)
		}
	}
	return i, nil
}
