package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"mvdan.cc/sh/v3/shell"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/dice"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/shared"
)

// toolsdemo exercises the tool clients directly, without an LLM in the loop.

// Same repetition cap as the roll_dice MCP tool.
const maxNumRolls = 20

type demoClients struct {
	search  *service.SearchClient
	weather *service.WeatherClient
	extras  *service.ExtrasClient
}

func main() {
	interactive := flag.Bool("i", false, "interactive command mode instead of the scripted run")
	flag.Parse()

	cfg, err := shared.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("load config failed")
		return
	}

	clients := demoClients{
		search:  service.NewSearchClient(cfg.TavilyAPIKey),
		weather: service.NewWeatherClient(cfg.OpenWeatherAPIKey),
		extras:  service.NewExtrasClient(),
	}

	ctx := context.Background()
	if *interactive {
		runInteractive(ctx, cfg, clients)
	} else {
		runScripted(ctx, cfg, clients)
	}
}

func runScripted(ctx context.Context, cfg *shared.Config, clients demoClients) {
	fmt.Println("Dice tool (no API key required):")
	diceTests := []struct {
		notation string
		numRolls int
	}{
		{"3d6", 1},
		{"2d20k1", 2},
		{"4d8", 1},
		{"1d100", 3},
	}
	for _, tc := range diceTests {
		for i := 0; i < tc.numRolls; i++ {
			res, err := dice.Roll(tc.notation)
			if err != nil {
				fmt.Printf("  %s: %v\n", tc.notation, err)
				break
			}
			fmt.Printf("  %s\n", res)
		}
	}

	if cfg.OpenWeatherAPIKey != "" {
		fmt.Println("\nWeather tool:")
		for _, city := range []string{"Tokyo", "New York", "London"} {
			res, err := clients.weather.CurrentByCity(ctx, city, "metric")
			if err != nil {
				fmt.Printf("  %s: %v\n", city, err)
				continue
			}
			fmt.Printf("  %s\n", res)
		}
	} else {
		fmt.Println("\nSkipping weather tool, OPENWEATHER_API_KEY not set")
	}

	if cfg.TavilyAPIKey != "" {
		fmt.Println("\nWeb search tool:")
		res, err := clients.search.Search(ctx, "Model Context Protocol MCP")
		if err != nil {
			fmt.Printf("  %v\n", err)
		} else {
			fmt.Printf("%s\n", truncate(res, 500))
		}
	} else {
		fmt.Println("\nSkipping web search tool, TAVILY_API_KEY not set")
	}

	fmt.Println("\nExtras:")
	if joke, err := clients.extras.RandomJoke(ctx); err == nil {
		fmt.Printf("  joke: %s\n", strings.ReplaceAll(joke, "\n", " "))
	}
	if fact, err := clients.extras.CatFact(ctx); err == nil {
		fmt.Printf("  cat fact: %s\n", fact)
	}
	if quote, err := clients.extras.RandomQuote(ctx); err == nil {
		fmt.Printf("  quote: %s\n", quote)
	}
	if url, err := service.QRCodeURL("Hello MCP World!", "300x300"); err == nil {
		fmt.Printf("  qr: %s\n", url)
	}
}

const interactiveHelp = `Available commands:
  weather <city> [units]      units: metric, imperial or kelvin
  dice <notation> [num_rolls] e.g. 3d6 or 2d20k1
  search <query>
  joke | fact | quote
  qr <text> [size]            size like 300x300
  quit`

func runInteractive(ctx context.Context, cfg *shared.Config, clients demoClients) {
	fmt.Println(interactiveHelp)
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Shell-style splitting so quoted arguments like "new york" work.
		fields, err := shell.Fields(line, nil)
		if err != nil || len(fields) == 0 {
			fmt.Println("could not parse command, quotes must be balanced")
			continue
		}

		if fields[0] == "quit" || fields[0] == "exit" || fields[0] == "q" {
			return
		}
		if out, err := runCommand(ctx, clients, fields); err != nil {
			fmt.Printf("error: %v\n", err)
		} else {
			fmt.Println(out)
		}
	}
}

func runCommand(ctx context.Context, clients demoClients, fields []string) (string, error) {
	switch fields[0] {
	case "weather":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: weather <city> [units]")
		}
		units := "metric"
		if len(fields) > 2 {
			units = fields[2]
		}
		return clients.weather.CurrentByCity(ctx, fields[1], units)
	case "dice":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: dice <notation> [num_rolls]")
		}
		numRolls := 1
		if len(fields) > 2 {
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 1 || n > maxNumRolls {
				return "", fmt.Errorf("num_rolls must be an integer between 1 and %d", maxNumRolls)
			}
			numRolls = n
		}
		expr, err := dice.Parse(fields[1])
		if err != nil {
			return "", err
		}
		lines := make([]string, numRolls)
		for i := range lines {
			lines[i] = expr.Roll().String()
		}
		return strings.Join(lines, "\n"), nil
	case "search":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: search <query>")
		}
		res, err := clients.search.Search(ctx, strings.Join(fields[1:], " "))
		if err != nil {
			return "", err
		}
		return truncate(res, 500), nil
	case "joke":
		return clients.extras.RandomJoke(ctx)
	case "fact":
		return clients.extras.CatFact(ctx)
	case "quote":
		return clients.extras.RandomQuote(ctx)
	case "qr":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: qr <text> [size]")
		}
		size := ""
		if len(fields) > 2 {
			size = fields[2]
		}
		return service.QRCodeURL(fields[1], size)
	default:
		return "", fmt.Errorf("unknown command %q, try: weather, dice, search, joke, fact, quote, qr", fields[0])
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
