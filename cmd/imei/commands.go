package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/weiawesome/imei-service/internal/generator"
	"github.com/weiawesome/imei-service/pkg/imei"
	"github.com/weiawesome/imei-service/pkg/imei/imeijson"
	pkglog "github.com/weiawesome/imei-service/pkg/log"
)

// exitInvalid is the exit code for input that is not a valid IMEI.
const exitInvalid = 1

func logger(c *cli.Context) zerolog.Logger {
	return pkglog.New(pkglog.Config{
		Level:  c.String("log-level"),
		Pretty: true,
		Output: c.App.ErrWriter,
	})
}

func converter(c *cli.Context) (imeijson.Converter, error) {
	opt, err := imeijson.ParseWriteOption(c.String("write-as"))
	if err != nil {
		return imeijson.Converter{}, cli.Exit(err.Error(), 2)
	}
	return imeijson.Converter{WriteOption: opt}, nil
}

func parseCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("parse takes exactly one IMEI", 2)
	}

	id, err := imei.Parse(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), exitInvalid)
	}
	res := generator.NewParseResult(id)

	if c.Bool("json") {
		conv, err := converter(c)
		if err != nil {
			return err
		}
		out, err := json.Marshal(struct {
			IMEI       imeijson.Value `json:"imei"`
			TAC        int            `json:"tac"`
			FAC        int            `json:"fac"`
			SNR        int            `json:"snr"`
			CheckDigit int            `json:"check_digit"`
		}{conv.Value(id), res.TAC, res.FAC, res.SNR, res.CheckDigit})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, string(out))
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "IMEI:        %s\n", id)
	fmt.Fprintf(w, "TAC:         %02d\n", res.TAC)
	fmt.Fprintf(w, "FAC:         %06d\n", res.FAC)
	fmt.Fprintf(w, "SNR:         %06d\n", res.SNR)
	fmt.Fprintf(w, "Check digit: %d\n", res.CheckDigit)
	return nil
}

func validateCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("validate takes at least one IMEI", 2)
	}

	invalid := 0
	for _, arg := range c.Args().Slice() {
		if _, err := imei.Parse(arg); err != nil {
			invalid++
			var fe *imei.FormatError
			reason := err.Error()
			if errors.As(err, &fe) {
				reason = fe.Reason
			}
			fmt.Fprintf(c.App.Writer, "%s\tinvalid (%s)\n", arg, reason)
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s\tvalid\n", arg)
	}

	if invalid > 0 {
		return cli.Exit("", exitInvalid)
	}
	return nil
}

func generateCommand(c *cli.Context) error {
	l := logger(c)
	count := c.Int("count")

	gen, err := generator.NewIMEIGenerator(c.Uint64("seed"), max(count, 1))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	l.Debug().Bool("seeded", gen.Seeded()).Int(pkglog.FieldIMEICount, count).Msg("generating")

	ids, err := gen.GenerateBatch(count)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	if c.Bool("json") {
		conv, err := converter(c)
		if err != nil {
			return err
		}
		out, err := conv.MarshalSlice(ids)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, string(out))
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(c.App.Writer, id)
	}
	return nil
}

func samplesCommand(c *cli.Context) error {
	w := c.App.Writer
	const known = "356303489916807"

	fromString := imei.MustParse(known)
	fromBytes, _ := imei.ParseBytes([]byte(known))
	fromRunes, _ := imei.ParseRunes([]rune(known))
	fromInt, _ := imei.ParseInt64(356303489916807)

	fmt.Fprintf(w, "IMEI as int64:  %d\n", fromInt.Int64())
	fmt.Fprintf(w, "IMEI as string: %s\n", fromString)
	fmt.Fprintf(w, "IMEI as bytes:  %s\n", fromBytes.Bytes())
	fmt.Fprintf(w, "IMEI as runes:  %s\n", string(fromRunes.Runes()))
	fmt.Fprintf(w, "All equal:      %t\n", fromString == fromBytes && fromBytes == fromRunes && fromRunes == fromInt)

	fmt.Fprintf(w, "TAC: %d\n", fromString.TAC())
	fmt.Fprintf(w, "FAC: %d\n", fromString.FAC())
	fmt.Fprintf(w, "SNR: %d\n", fromString.SNR())

	fmt.Fprintf(w, "Random IMEI (seed 42): %s\n", imei.NewRandomSeeded(42))
	fmt.Fprintf(w, "Random IMEI (shared source): %s\n", imei.NewRandom(rand.New(rand.NewPCG(42, 0))))
	secure, err := imei.NewSecureRandom()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Random IMEI (secure): %s\n", secure)

	_, ok := imei.TryParse("123456789012345")
	fmt.Fprintf(w, "123456789012345 is valid: %t\n", ok)
	if _, err := imei.Parse("12345678901234x"); err != nil {
		fmt.Fprintf(w, "Parse error: %v\n", err)
	}
	unchecked, _ := imei.New(123456789012345, imei.WithoutValidation())
	fmt.Fprintf(w, "Stored without validation: %s (valid: %t)\n", unchecked, unchecked.IsValid())

	for _, opt := range []imeijson.WriteOption{imeijson.WriteAsNumber, imeijson.WriteAsString} {
		out, err := json.Marshal(struct {
			Device imeijson.Value `json:"device"`
		}{imeijson.Converter{WriteOption: opt}.Value(fromString)})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "JSON (%s): %s\n", opt, out)
	}
	return nil
}
