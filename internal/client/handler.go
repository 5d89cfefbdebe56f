package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NP-Dat/battle-arena/internal/network"
)

// SetupDefaultHandlers sets up the default message handlers for the client
func (c *Client) SetupDefaultHandlers() {
	// Authentication results
	c.RegisterHandler(network.MessageTypeAuthResult, func(msg *network.Message) error {
		var payload network.AuthResultPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse auth result: %w", err)
		}

		if payload.Success {
			fmt.Printf("Authentication successful. Welcome, %s!\n", c.Username)
			fmt.Println("Type 'play' to queue for a match, or 'play bot' to fight the Warlord.")
		} else {
			fmt.Printf("Authentication failed: %s\n", payload.Message)
		}

		return nil
	})

	// Server notifications
	c.RegisterHandler(network.MessageTypeGameEvent, func(msg *network.Message) error {
		var payload network.GameEventPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse game event: %w", err)
		}

		fmt.Printf("* %s\n", payload.Message)
		return nil
	})

	// Match start
	c.RegisterHandler(network.MessageTypeMatchStart, func(msg *network.Message) error {
		var payload network.MatchStartPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse match start: %w", err)
		}

		fmt.Println("\n=== Match found! ===")
		fmt.Printf("Opponent: %s\n", payload.OpponentUsername)
		if payload.VersusBot {
			fmt.Println("(automated opponent)")
		}
		fmt.Printf("Starting gold: %d\n", payload.StartingGold)

		return nil
	})

	// Shop phases
	c.RegisterHandler(network.MessageTypeShopOpen, func(msg *network.Message) error {
		var payload network.ShopOpenPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse shop open: %w", err)
		}

		c.shopMutex.Lock()
		c.shopPhase = payload.Phase
		c.shopMutex.Unlock()

		printShop(&payload)
		return nil
	})

	c.RegisterHandler(network.MessageTypeShopResult, func(msg *network.Message) error {
		var payload network.ShopResultPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse shop result: %w", err)
		}

		if payload.Success {
			if payload.TeamSize > 0 {
				fmt.Printf("Bought! Gold: %d | Units: %d\n", payload.Gold, payload.TeamSize)
			} else {
				fmt.Printf("Bought! Gold: %d\n", payload.Gold)
			}
		} else {
			fmt.Printf("Purchase failed: %s (gold: %d)\n", payload.Message, payload.Gold)
		}
		return nil
	})

	// Round reports
	c.RegisterHandler(network.MessageTypeRoundReport, func(msg *network.Message) error {
		var payload network.RoundReportPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse round report: %w", err)
		}

		c.shopMutex.Lock()
		c.shopPhase = ""
		c.shopMutex.Unlock()

		printRoundReport(&payload)
		return nil
	})

	// Match over
	c.RegisterHandler(network.MessageTypeMatchOver, func(msg *network.Message) error {
		var payload network.MatchOverPayload
		if err := network.ParsePayload(msg, &payload); err != nil {
			return fmt.Errorf("failed to parse match over: %w", err)
		}

		c.shopMutex.Lock()
		c.shopPhase = ""
		c.shopMutex.Unlock()

		fmt.Println("\n=== Match Over ===")
		fmt.Printf("Reason: %s\n", payload.Reason)
		switch {
		case payload.Draw:
			fmt.Println("Both teams wiped out. It's a draw!")
		case payload.Winner == c.Username:
			fmt.Println("You win the match!")
		default:
			fmt.Printf("%s wins the match.\n", payload.Winner)
		}
		fmt.Printf("Rounds played: %d | Record: %dW-%dL-%dD\n",
			payload.Rounds, payload.Wins, payload.Losses, payload.Draws)
		fmt.Println("Type 'play' for another match.")

		return nil
	})
}

// printShop renders a shop_open payload as a numbered menu.
func printShop(shop *network.ShopOpenPayload) {
	if shop.Phase == network.ShopPhaseRoster {
		fmt.Println("\n=== Pre-Match Shop ===")
		fmt.Printf("Gold: %d | Units: %d/%d\n", shop.Gold, shop.TeamSize, shop.MaxUnits)
		for i, unit := range shop.Units {
			fmt.Printf("%d) %-10s - Cost %d | HP %d ATK %d DEF %d CRIT %d%% SPD %d\n",
				i+1, unit.Name, unit.Cost, unit.MaxHP, unit.Attack, unit.Defense,
				int(unit.Crit*100), unit.Speed)
		}
		fmt.Println("Type 'buy <n>' to recruit, 'done' to finish.")
		return
	}

	fmt.Println("\n=== Upgrade Shop ===")
	if shop.Weapon != nil {
		fmt.Printf("Gold: %d | Weapon: DMG+%d CRIT+%d%% SPD+%d\n",
			shop.Gold, shop.Weapon.DamageBonus, int(shop.Weapon.CritBonus*100), shop.Weapon.SpeedBonus)
	} else {
		fmt.Printf("Gold: %d\n", shop.Gold)
	}
	for i, upgrade := range shop.Upgrades {
		fmt.Printf("%d) %s - Cost %d\n", i+1, upgrade.Label, upgrade.Cost)
	}
	fmt.Println("Type 'buy <n>' to purchase, 'done' to finish.")
}

// printRoundReport renders one round's attack log and both team rosters.
func printRoundReport(report *network.RoundReportPayload) {
	fmt.Printf("\n=== Round %d ===\n", report.Round)
	for _, atk := range report.Attacks {
		critText := ""
		if atk.Crit {
			critText = " CRIT!"
		}
		fmt.Printf("%s hits %s for %d.%s\n", atk.Attacker, atk.Target, atk.Damage, critText)
	}

	printTeam("Your team", report.YourUnits)
	printTeam("Opponent team", report.OpponentUnits)

	switch report.Outcome {
	case "you":
		fmt.Println("\nEnemy team wiped out!")
	case "opponent":
		fmt.Println("\nYour team was wiped out!")
	case "draw":
		fmt.Println("\nBoth teams wiped out!")
	}
}

// printTeam renders one side's roster with health bars.
func printTeam(label string, units []network.UnitStatusInfo) {
	fmt.Printf("\n%s:\n", label)
	for _, unit := range units {
		status := "ALIVE"
		if !unit.Alive {
			status = "DEAD"
		}
		bar := createHealthBar(float64(unit.HP)/float64(unit.MaxHP), 10)
		fmt.Printf("- %-10s %s %3d/%-3d [%s]\n", unit.Name, bar, unit.HP, unit.MaxHP, status)
	}
}

// createHealthBar generates a visual health bar based on percentage
func createHealthBar(percent float64, length int) string {
	if percent < 0 {
		percent = 0
	} else if percent > 1 {
		percent = 1
	}

	filled := int(percent * float64(length))
	empty := length - filled

	// Different fill characters hint at health bands on plain terminals
	fill := "#"
	if percent <= 0.3 {
		fill = "!"
	} else if percent <= 0.7 {
		fill = "="
	}

	return fmt.Sprintf("[%s%s]", strings.Repeat(fill, filled), strings.Repeat("-", empty))
}

// PromptLogin interactively reads credentials and logs in.
func (c *Client) PromptLogin() error {
	var username, password string

	fmt.Println("=== Text Battle Arena Login ===")
	fmt.Print("Username: ")
	fmt.Scanln(&username)

	fmt.Print("Password: ")
	fmt.Scanln(&password)

	if username == "" || password == "" {
		return fmt.Errorf("username and password cannot be empty")
	}

	return c.Login(username, password)
}

// ParseCommand parses and handles client commands
func (c *Client) ParseCommand(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	parts := strings.Fields(input)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: login <username> <password>")
		}
		return c.Login(args[0], args[1])

	case "play":
		versusBot := len(args) == 1 && strings.ToLower(args[0]) == "bot"
		if !versusBot && len(args) != 0 {
			return fmt.Errorf("usage: play [bot]")
		}
		return c.Queue(versusBot)

	case "buy":
		if len(args) != 1 {
			return fmt.Errorf("usage: buy <number>")
		}
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 1 {
			return fmt.Errorf("buy takes a positive menu number")
		}

		c.shopMutex.Lock()
		phase := c.shopPhase
		c.shopMutex.Unlock()

		switch phase {
		case network.ShopPhaseRoster:
			return c.Buy(network.MessageTypeBuyUnit, index)
		case network.ShopPhaseUpgrade:
			return c.Buy(network.MessageTypeBuyUpgrade, index)
		default:
			return fmt.Errorf("no shop is open")
		}

	case "done":
		c.shopMutex.Lock()
		phase := c.shopPhase
		c.shopPhase = ""
		c.shopMutex.Unlock()
		if phase == "" {
			return fmt.Errorf("no shop is open")
		}
		return c.ShopDone()

	case "quit":
		return c.Disconnect()

	case "help":
		fmt.Println("\nAvailable Commands:")
		fmt.Println("  login <username> <password> - Log in to the server")
		fmt.Println("  play - Queue for a match against another player")
		fmt.Println("  play bot - Start a match against the Warlord")
		fmt.Println("  buy <n> - Buy the numbered item while a shop is open")
		fmt.Println("  done - Finish the current shop phase")
		fmt.Println("  quit - Disconnect from the server")
		fmt.Println("  help - Display this help message")
		return nil

	default:
		return fmt.Errorf("unknown command %q (try 'help')", command)
	}
}
