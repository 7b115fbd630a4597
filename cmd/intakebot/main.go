// Console front end for the FreshAuto intake dialog. The chat transport in
// production delivers messages per conversation; here stdin plays that role
// with a single conversation key.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/freshauto/intakebot/ai"
	"github.com/freshauto/intakebot/config"
	"github.com/freshauto/intakebot/dialog"
	"github.com/freshauto/intakebot/stt"
	"github.com/freshauto/intakebot/summary"
	"github.com/freshauto/intakebot/webhook"
)

const conversationID = "console"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("intakebot stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	client, err := ai.NewDeepSeek(ctx, ai.Config{
		APIKey:  cfg.DeepSeekAPIKey,
		BaseURL: cfg.DeepSeekAPIURL,
		Model:   cfg.DeepSeekModel,
		Timeout: cfg.AITimeout,
	})
	if err != nil {
		return fmt.Errorf("init text-intelligence client: %w", err)
	}

	assistant := ai.NewAssistant(client)
	machine := dialog.NewMachine(
		assistant,
		summary.NewAccumulator(client),
		webhook.NewSender(cfg.WebhookURL, cfg.WebhookAPIKey),
		assistant,
		assistant,
	)
	store := dialog.NewStore()

	var recognizer stt.Recognizer
	if cfg.STTURL != "" {
		recognizer = stt.NewHTTPRecognizer(cfg.STTURL)
		slog.Info("speech recognizer configured", "url", cfg.STTURL)
	}

	fmt.Println("FreshAuto intake bot. Отправьте любое сообщение, чтобы начать. Ctrl+D — выход.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		session := store.Get(conversationID)
		var reply string
		if path, ok := strings.CutPrefix(input, "/voice "); ok {
			audio, readErr := os.ReadFile(strings.TrimSpace(path))
			if readErr != nil {
				fmt.Printf("не удалось прочитать аудио файл: %v\n", readErr)
				continue
			}
			reply = machine.AdvanceVoice(ctx, session, audio, recognizer)
		} else {
			reply = machine.Advance(ctx, session, input)
		}
		fmt.Printf("\n%s\n\n", reply)
	}
	return scanner.Err()
}
