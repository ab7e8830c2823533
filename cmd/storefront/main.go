// cmd/storefront/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ateliernord/gallery/internal/models"
	"github.com/ateliernord/gallery/internal/storefront"
)

func main() {
	apiBase := pflag.String("api", "http://localhost:4000", "gallery API base URL")
	cartPath := pflag.String("cart-file", "", "cart snapshot file (defaults to the user config dir)")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if !*verbose {
		logrus.SetLevel(logrus.WarnLevel)
	}

	path := *cartPath
	if path == "" {
		var err error
		if path, err = storefront.DefaultCartPath(); err != nil {
			fmt.Fprintln(os.Stderr, "cannot resolve cart path:", err)
			os.Exit(1)
		}
	}

	client := storefront.NewClient(*apiBase)
	cart := storefront.NewCart(storefront.NewFileCartStorage(path))
	pipeline := storefront.NewFilterPipeline(client)
	defer pipeline.Close()

	pipeline.Subscribe(func(state storefront.ResultState) {
		if state.Loading {
			fmt.Println("loading...")
			return
		}
		printResults(state.Items)
	})
	pipeline.Start()

	fmt.Println("gallery storefront — type 'help' for commands")
	repl(client, cart, pipeline)
}

func repl(client *storefront.Client, cart *storefront.Cart, pipeline *storefront.FilterPipeline) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "search":
			pipeline.SetQuery(strings.Join(args, " "))
		case "style":
			pipeline.SetStyle(strings.Join(args, " "))
		case "max":
			if len(args) != 1 {
				fmt.Println("usage: max <price>")
				continue
			}
			price, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				fmt.Println("invalid price:", args[0])
				continue
			}
			pipeline.SetMaxPrice(price)
		case "clear":
			pipeline.ClearFilters()
		case "show":
			if len(args) != 1 {
				fmt.Println("usage: show <slug>")
				continue
			}
			showArtwork(client, args[0])
		case "add":
			if len(args) < 1 {
				fmt.Println("usage: add <id> [qty]")
				continue
			}
			qty := 1
			if len(args) > 1 {
				qty, _ = strconv.Atoi(args[1])
			}
			cart.Add(args[0], qty)
			fmt.Println("added")
		case "rm":
			if len(args) != 1 {
				fmt.Println("usage: rm <id>")
				continue
			}
			cart.Remove(args[0])
			fmt.Println("removed")
		case "qty":
			if len(args) != 2 {
				fmt.Println("usage: qty <id> <n>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("invalid quantity:", args[1])
				continue
			}
			cart.SetQty(args[0], n)
		case "cart":
			printCart(cart.Items())
		case "checkout":
			if len(args) < 2 {
				fmt.Println("usage: checkout <name> <email> [note...]")
				continue
			}
			checkout(client, cart, args[0], args[1], strings.Join(args[2:], " "))
		case "inquire":
			if len(args) < 3 {
				fmt.Println("usage: inquire <slug> <email> <message...>")
				continue
			}
			inquire(client, args[0], args[1], strings.Join(args[2:], " "))
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func showArtwork(client *storefront.Client, slug string) {
	art, err := client.GetArtwork(context.Background(), slug)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s — %s (%d)\n", art.Title, art.Artist, art.Year)
	fmt.Printf("  %s, %gx%g %s, %g %s [%s]\n", art.Medium,
		art.Dimensions.W, art.Dimensions.H, art.Dimensions.Unit,
		art.Price, art.Currency, art.Availability)
	if len(art.Tags) > 0 {
		fmt.Println("  tags:", strings.Join(art.Tags, ", "))
	}
}

func checkout(client *storefront.Client, cart *storefront.Cart, name, email, note string) {
	items := cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}

	req := models.CheckoutRequest{
		Cart:  items,
		Buyer: models.Buyer{Name: name, Email: email, Note: note},
	}
	if err := client.CheckoutEmail(context.Background(), req); err != nil {
		fmt.Println("checkout failed:", err)
		return
	}

	cart.Clear()
	fmt.Println("order request sent")
}

func inquire(client *storefront.Client, slug, email, message string) {
	req := models.InquiryRequest{Slug: slug, Email: email, Message: message}
	if err := client.Inquiry(context.Background(), req); err != nil {
		fmt.Println("inquiry failed:", err)
		return
	}
	fmt.Println("inquiry sent")
}

func printResults(items []models.Artwork) {
	if len(items) == 0 {
		fmt.Println("no artworks match")
		return
	}
	for _, a := range items {
		fmt.Printf("  [%s] %s — %s, %g %s (%s)\n", a.ID, a.Title, a.Artist, a.Price, a.Currency, a.Slug)
	}
}

func printCart(items []models.CartItem) {
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("  %s x%d\n", item.ID, item.Qty)
	}
}

func printHelp() {
	fmt.Println(`commands:
  search <text>                 free-text filter
  style <name>                  style filter
  max <price>                   price bound (0 clears)
  clear                         reset all filters
  show <slug>                   artwork details
  add <id> [qty]                add to cart
  rm <id>                       remove from cart
  qty <id> <n>                  set quantity
  cart                          show cart
  checkout <name> <email> [note]
  inquire <slug> <email> <message>
  quit`)
}
