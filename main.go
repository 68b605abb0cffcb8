package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spo2-monitor/decrypt-spo2-payloads/config"
	"github.com/spo2-monitor/decrypt-spo2-payloads/pkg/log"
	"github.com/spo2-monitor/decrypt-spo2-payloads/pkg/spo2"
)

// placeholderPayload is used when no payload is given, replace it with an
// actual MQTT payload from the sensor.
const placeholderPayload = "YOUR_BASE64_ENCRYPTED_STRING"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load config: " + err.Error())
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	err = run(context.Background(), os.Args[1:], os.Stdout, cfg, logger)
	_ = logger.Sync()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal(err.Error())
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, cfg *config.Config, logger log.Logger) error {
	var payload, plaintext string
	var raw bool

	flags := flag.NewFlagSet("decrypt-spo2-payloads", flag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.StringVar(&payload, "payload", placeholderPayload, `The Base64 payload published by the sensor ("a11JYwq2PvlGadgGlnIqmQ==")`)
	flags.StringVar(&plaintext, "encrypt", "", "Print the payload the sensor would publish for this text instead of decrypting")
	flags.BoolVar(&raw, "raw", false, "Also print the decrypted block as hex, padding included")
	if err := flags.Parse(args); err != nil {
		return err
	}

	setupOutput(stdout, cfg.Output.NoColor)

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	switch flags.NArg() {
	case 0:
	case 1:
		if set["payload"] {
			return errors.New("payload given both as argument and with --payload")
		}
		payload = flags.Arg(0)
		set["payload"] = true
	default:
		return fmt.Errorf("expected a single payload but got %d arguments", flags.NArg())
	}

	if set["payload"] && set["encrypt"] {
		return errors.New("--payload and --encrypt can not be combined")
	}

	decryptor := spo2.NewDefault()

	if set["encrypt"] {
		logger.Debugf(ctx, "encrypting %d bytes of plaintext", len(plaintext))
		fmt.Fprintln(style, decryptor.Encrypt(plaintext))
		return nil
	}

	if !set["payload"] {
		warn(`payload argument not set, usage: --payload "a11JYwq2PvlGadgGlnIqmQ=="`)
	}

	logger.Debugf(ctx, "decrypting payload of %d characters", len(payload))
	if raw {
		printRaw(ctx, logger, decryptor, payload)
	}

	value, err := decryptor.DecodeAndDecrypt(payload)
	if err != nil {
		logger.Debugf(ctx, "failed to decrypt payload: %v", err)
		return err
	}

	fmt.Fprintf(style, "%s %s\n", applyMeta("Decrypted SpO₂ value:"), applyValue(value))
	return nil
}

// printRaw shows the decrypted block before the padding is removed. Failures
// are left to DecodeAndDecrypt to report.
func printRaw(ctx context.Context, logger log.Logger, decryptor *spo2.Decryptor, payload string) {
	ciphertext, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return
	}
	logger.Debugf(ctx, "ciphertext [%s]", bToHex(ciphertext))

	padded, err := decryptor.DecryptPadded(ciphertext)
	if err != nil {
		return
	}

	fmt.Fprintf(style, "%s %s\n", applyMeta("Block:"), hexStyle(padded, hexStyleDecrypted|hexStyleContainsPadding))
}
