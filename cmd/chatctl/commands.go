package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"eveshield-be/pkg/chatbot"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// maxLineBytes caps a single repl line (bufio defaults to 64 KiB).
const maxLineBytes = 16 << 20

const (
	botMentalHealth = "mental-health"
	botLegal        = "legal"
)

var (
	topicColor  = color.New(color.FgCyan, color.Bold)
	replyColor  = color.New(color.FgGreen)
	promptColor = color.New(color.FgYellow)
)

type bot interface {
	chatbot.Resolver
	ResolveTopic(message string) chatbot.Topic
	Respond(topic chatbot.Topic) string
}

func newBot(name string) (bot, interface{}, error) {
	switch name {
	case botMentalHealth:
		kb := chatbot.DefaultMentalHealthKnowledgeBase()
		return chatbot.NewMentalHealthResolver(kb, nil), kb, nil
	case botLegal:
		kb := chatbot.DefaultLegalKnowledgeBase()
		return chatbot.NewLegalResolver(kb), kb, nil
	default:
		return nil, nil, fmt.Errorf("unknown bot %q (want %s or %s)", name, botMentalHealth, botLegal)
	}
}

func newRootCmd() *cobra.Command {
	var botName string

	root := &cobra.Command{
		Use:           "chatctl",
		Short:         "Talk to the EveShield support chatbots from a terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&botName, "bot", "b", botLegal, "chatbot to use: mental-health or legal")

	root.AddCommand(&cobra.Command{
		Use:   "ask [message]",
		Short: "Resolve a single message and print the topic and reply",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := newBot(botName)
			if err != nil {
				return err
			}
			answer(cmd.OutOrStdout(), b, strings.Join(args, " "))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Chat interactively until EOF or an empty line",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := newBot(botName)
			if err != nil {
				return err
			}
			return repl(cmd.InOrStdin(), cmd.OutOrStdout(), b)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "kb",
		Short: "Print the knowledge base as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, kb, err := newBot(botName)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(kb)
		},
	})

	return root
}

func answer(out io.Writer, b bot, message string) {
	topic := b.ResolveTopic(message)
	topicColor.Fprintf(out, "[%s]\n", topic)
	replyColor.Fprintln(out, b.Respond(topic))
}

func repl(in io.Reader, out io.Writer, b bot) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for {
		promptColor.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		answer(out, b, line)
	}
}
