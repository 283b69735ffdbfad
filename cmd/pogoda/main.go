package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/lox/pogoda/internal/api"
	"github.com/lox/pogoda/internal/entity"
	"github.com/lox/pogoda/internal/pogoda"
	"github.com/lox/pogoda/internal/store"
	"github.com/lox/pogoda/internal/units"
)

type CLI struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name=env-file,help='Path to .env file'"`

	Serve     ServeCmd     `cmd:"" help:"Run the HTTP API."`
	State     StateCmd     `cmd:"" help:"Map a provider payload file to a weather state."`
	Condition ConditionCmd `cmd:"" help:"Map a condition code to a weather state."`
	Icon      IconCmd      `cmd:"" help:"Map a condition code to an icon."`
	Direction DirectionCmd `cmd:"" help:"Convert a wind angle to a compass direction."`
	Convert   ConvertCmd   `cmd:"" help:"Convert a temperature or wind speed."`
	Daypart   DaypartCmd   `cmd:"" help:"Show the day part for a time."`
	Unknown   UnknownCmd   `cmd:"" help:"List provider codes seen without a mapping."`
}

type DBFlags struct {
	DB string `name:"db" env:"POGODA_DB" default:"data/pogoda.db" help:"Path to SQLite database."`
}

type UnitFlags struct {
	TemperatureUnit string `env:"POGODA_TEMPERATURE_UNIT" default:"°C" enum:"°C,°F,K" help:"Temperature unit for mapped states."`
	WindSpeedUnit   string `env:"POGODA_WIND_SPEED_UNIT" default:"m/s" enum:"m/s,km/h,mph,kn,ft/s" help:"Wind speed unit for mapped states."`
}

type LocationFlags struct {
	TZ string `name:"tz" env:"POGODA_TZ" default:"Local" help:"IANA time zone day parts are bucketed in."`
}

func (f LocationFlags) location() (*time.Location, error) {
	loc, err := time.LoadLocation(f.TZ)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", f.TZ, err)
	}
	return loc, nil
}

func (f LocationFlags) builder(u UnitFlags, rec entity.UnknownRecorder, clock clockwork.Clock) (*entity.Builder, error) {
	loc, err := f.location()
	if err != nil {
		return nil, err
	}
	b := entity.NewBuilder(u.TemperatureUnit, u.WindSpeedUnit, rec)
	b.Clock = clock
	b.Location = loc
	return b, nil
}

type ServeCmd struct {
	DBFlags
	UnitFlags
	LocationFlags
	Addr string `env:"POGODA_ADDR" default:":8080" help:"HTTP listen address."`
}

func (c *ServeCmd) Run(clock clockwork.Clock) error {
	st, closeDB, err := openStore(c.DB)
	if err != nil {
		return err
	}
	defer closeDB()

	builder, err := c.builder(c.UnitFlags, st, clock)
	if err != nil {
		return err
	}
	server := api.NewServer(st, builder, c.Addr)
	server.SetClock(clock)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("starting server on %s", c.Addr)
	return server.Run(ctx)
}

type StateCmd struct {
	UnitFlags
	LocationFlags
	File string `arg:"" type:"existingfile" help:"Provider JSON payload."`
}

func (c *StateCmd) Run(out io.Writer, clock clockwork.Clock) error {
	builder, err := c.builder(c.UnitFlags, nil, clock)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	fact, forecast, err := entity.ParseFact(raw)
	if err != nil {
		return err
	}
	state, err := builder.Build(fact, forecast)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}

type ConditionCmd struct {
	Code  string `arg:"" help:"Provider condition code, e.g. CLEAR."`
	Night bool   `help:"Use the night variant."`
}

func (c *ConditionCmd) Run(out io.Writer) error {
	_, err := fmt.Fprintln(out, pogoda.MapState(c.Code, !c.Night, pogoda.WeatherStates))
	return err
}

type IconCmd struct {
	Code  string `arg:"" help:"Provider condition code, e.g. CLEAR."`
	Night bool   `help:"Use the night variant."`
}

func (c *IconCmd) Run(out io.Writer) error {
	_, err := fmt.Fprintln(out, pogoda.MapState(c.Code, !c.Night, pogoda.ConditionIcons))
	return err
}

type DirectionCmd struct {
	Angle float64 `arg:"" help:"Wind bearing in degrees."`
}

func (c *DirectionCmd) Run(out io.Writer) error {
	dir, err := pogoda.WindDirection(c.Angle)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, dir)
	return err
}

type ConvertCmd struct {
	Kind  string  `arg:"" enum:"temperature,wind_speed" help:"What to convert (temperature, wind_speed)."`
	Value float64 `arg:"" help:"Value to convert."`
	From  string  `arg:"" help:"Source unit."`
	To    string  `arg:"" help:"Target unit."`
}

func (c *ConvertCmd) Run(out io.Writer) error {
	conv := units.ConvertTemperature
	if c.Kind == "wind_speed" {
		conv = units.ConvertWindSpeed
	}
	v, err := pogoda.ConvertUnitValue(conv, &c.Value, c.From, c.To)
	if err != nil {
		return err
	}
	if v == nil {
		_, err = fmt.Fprintln(out, "null")
		return err
	}
	_, err = fmt.Fprintf(out, "%.6g %s\n", *v, c.To)
	return err
}

type DaypartCmd struct {
	LocationFlags
	At string `help:"RFC 3339 time (defaults to now)."`
}

func (c *DaypartCmd) Run(out io.Writer, clock clockwork.Clock) error {
	loc, err := c.location()
	if err != nil {
		return err
	}
	t := clock.Now()
	if c.At != "" {
		if t, err = time.Parse(time.RFC3339, c.At); err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
	}
	_, err = fmt.Fprintln(out, pogoda.DayPartAt(t.In(loc)))
	return err
}

type UnknownCmd struct {
	DBFlags
}

func (c *UnknownCmd) Run(out io.Writer) error {
	st, closeDB, err := openStore(c.DB)
	if err != nil {
		return err
	}
	defer closeDB()

	codes, err := st.UnknownCodes()
	if err != nil {
		return err
	}
	for _, code := range codes {
		fmt.Fprintf(out, "%-9s %-24s %6d  last seen %s\n", code.Kind, code.Code, code.Count, code.LastSeen.Format(time.RFC3339))
	}
	return nil
}

func openStore(path string) (*store.Store, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return st, func() { db.Close() }, nil
}

func newParser(cli *CLI, out io.Writer, clock clockwork.Clock, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("pogoda"),
		kong.Description("Map Yandex Pogoda weather data onto home automation entities."),
		kong.UsageOnError(),
		kong.BindTo(out, (*io.Writer)(nil)),
		kong.BindTo(clock, (*clockwork.Clock)(nil)),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, clockwork.NewRealClock())
	if err != nil {
		log.Fatalf("cli: %v", err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
