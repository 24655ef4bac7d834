// Interactive terminal client for the portfolio chat assistant.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/manthanmittal/portfolio-server/internal/chat"
	"github.com/manthanmittal/portfolio-server/internal/client"
	"github.com/manthanmittal/portfolio-server/internal/content"
)

var serverURL = flag.String("server", "http://localhost:8080", "Portfolio server base URL")

func main() {
	flag.Parse()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create renderer: %v\n", err)
		os.Exit(1)
	}

	corpus := content.Default()
	welcome := fmt.Sprintf(
		"Hi! I'm an AI assistant for **%s's** portfolio. Ask me about skills, projects, or experience.",
		corpus.Profile.Name,
	)
	conv := client.NewConversation(client.NewAPI(*serverURL), welcome)

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(boldGreen("Portfolio Assistant"))
	fmt.Printf("Connected to %s\n", boldCyan(*serverURL))
	fmt.Println("Type your message and press Enter. '/clear' resets, 'exit' quits.")
	fmt.Println()
	printAssistant(renderer, welcome)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "exit", "quit":
			return
		case "/clear":
			conv.Clear()
			fmt.Println("Conversation cleared.")
			printAssistant(renderer, welcome)
			continue
		}

		done := conv.SendMessage(input)
		if done == nil {
			continue
		}
		<-done

		messages := conv.Messages()
		last := messages[len(messages)-1]
		if last.Role == chat.RoleAssistant {
			printAssistant(renderer, last.Content)
		}
	}
}

func printAssistant(renderer *glamour.TermRenderer, markdown string) {
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Print(boldCyan("Assistant: "))
	rendered, err := renderer.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Println(strings.TrimSpace(rendered))
	fmt.Println()
}
