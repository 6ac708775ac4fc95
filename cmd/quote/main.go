package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/courierly/pricing-api/internal/pricing"
)

// Interactive quoting loop: reads one order per round from the terminal,
// prints the fee or the specific validation message, and continues until the
// user declines. Malformed numeric input is handled here with a reprompt; it
// never reaches the engine.
func main() {
	inclusive := flag.Bool("inclusive-free-delivery", false,
		"apply the documented >= 50.00 free-delivery rule instead of the legacy strict >")
	flag.Parse()

	engine := pricing.Engine{InclusiveFreeDelivery: *inclusive}
	in := bufio.NewScanner(os.Stdin)

	for {
		subtotal, ok := promptMoney(in, "Cart subtotal: ")
		if !ok {
			return
		}
		distance, ok := promptFloat(in, "Delivery distance (km): ")
		if !ok {
			return
		}
		rush, ok := promptYesNo(in, "Rush hour? (y/n): ")
		if !ok {
			return
		}

		if order, err := pricing.NewOrder(subtotal, distance, rush); err != nil {
			fmt.Println(err)
		} else if fee, err := engine.CalculateFee(order); err != nil {
			fmt.Println(err)
		} else {
			fmt.Printf("Delivery fee: %s\n", pricing.FormatMoney(fee))
		}

		again, ok := promptYesNo(in, "Quote another order? (y/n): ")
		if !ok || !again {
			return
		}
		fmt.Println()
	}
}

func promptLine(in *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func promptMoney(in *bufio.Scanner, prompt string) (pricing.Money, bool) {
	for {
		line, ok := promptLine(in, prompt)
		if !ok {
			return 0, false
		}
		amount, err := pricing.ParseMoney(line)
		if err != nil {
			fmt.Println("Please enter an amount like 30.00.")
			continue
		}
		return amount, true
	}
}

func promptFloat(in *bufio.Scanner, prompt string) (float64, bool) {
	for {
		line, ok := promptLine(in, prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Println("Please enter a number like 6.5.")
			continue
		}
		return value, true
	}
}

func promptYesNo(in *bufio.Scanner, prompt string) (bool, bool) {
	for {
		line, ok := promptLine(in, prompt)
		if !ok {
			return false, false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		fmt.Println("Please answer y or n.")
	}
}
