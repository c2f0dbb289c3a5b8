package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	sqliteadapter "github.com/vuminhieu/spexor-client/internal/adapters/db/sqlite"
	rpcadapter "github.com/vuminhieu/spexor-client/internal/adapters/rpcjson"
	"github.com/vuminhieu/spexor-client/internal/application"
	"github.com/vuminhieu/spexor-client/internal/domain"
	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "spexor",
		Usage: "Audio investigation case management server and CLI",
		Commands: []*cli.Command{
			serverCommand(),
			authCommand(),
			casesCommand(),
			audioCommand(),
			speakersCommand(),
			samplesCommand(),
			transcriptsCommand(),
			alertsCommand(),
			replacementsCommand(),
			notificationsCommand(),
			usersCommand(),
			activityCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, defaultDataDir(), defaultSocket)
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".spexor")
}

func serverCommand() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Run the backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Value: defaultDataDir(), Usage: "directory holding the database file"},
			&cli.StringFlag{Name: "rpc-socket", Value: defaultSocket, Usage: "JSON-RPC unix socket path"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, c.String("data-dir"), c.String("rpc-socket"))
		},
	}
}

func runServer(ctx context.Context, dataDir, rpcSocket string) error {
	db, err := sqliteadapter.Open(dataDir)
	if err != nil {
		return err
	}
	if err := sqliteadapter.RunMigrations(ctx, db); err != nil {
		return err
	}

	service := application.NewService(sqliteadapter.NewRepositories(db))
	if err := service.SeedAdmin(ctx); err != nil {
		return err
	}

	rpcSrv, err := rpcadapter.Start(rpcSocket, service)
	if err != nil {
		return err
	}
	defer func() { _ = rpcSrv.Close() }()
	log.Printf("database ready in %s", dataDir)
	log.Printf("json-rpc listening on unix://%s", rpcSocket)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("received signal %s, shutting down", sig)
	return nil
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authentication commands",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Login and remember the account locally",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "socket", Value: defaultSocket},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg := cliConfig{Socket: c.String("socket")}
					var out domain.PublicUser
					err := rpcCall(ctx, cfg, "auth.login", map[string]any{
						"username": c.String("username"),
						"password": c.String("password"),
					}, &out)
					if err != nil {
						return err
					}
					cfg.UserID = &out.ID
					cfg.Username = out.Username
					if err := saveConfig(cfg); err != nil {
						return err
					}
					fmt.Printf("logged in as %s\n", out.Username)
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "Show the remembered account",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out *domain.PublicUser
					if err := rpcCall(ctx, cfg, "auth.current_user", map[string]any{"user_id": cfg.UserID}, &out); err != nil {
						return err
					}
					if out == nil {
						fmt.Println("not logged in")
						return nil
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUser(*out)
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Forget the remembered account",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					_ = rpcCall(ctx, cfg, "auth.logout", map[string]any{"user_id": cfg.UserID}, nil)
					cfg.UserID = nil
					cfg.Username = ""
					if err := saveConfig(cfg); err != nil {
						return err
					}
					fmt.Println("logged out")
					return nil
				},
			},
			{
				Name:  "change-password",
				Usage: "Change the remembered account's password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "current", Required: true},
					&cli.StringFlag{Name: "new", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					if cfg.UserID == nil {
						return fmt.Errorf("not logged in")
					}
					err = rpcCall(ctx, cfg, "auth.change_password", map[string]any{
						"user_id":          *cfg.UserID,
						"current_password": c.String("current"),
						"new_password":     c.String("new"),
					}, nil)
					if err != nil {
						return err
					}
					fmt.Println("password changed")
					return nil
				},
			},
		},
	}
}

func casesCommand() *cli.Command {
	return &cli.Command{
		Name:  "cases",
		Usage: "Case commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List cases",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.Case
					if err := rpcCall(ctx, cfg, "cases.list", nil, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCases(out)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Show one case",
				Flags: []cli.Flag{&cli.UintFlag{Name: "id", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out domain.Case
					if err := rpcCall(ctx, cfg, "cases.get", map[string]any{"id": c.Uint("id")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCases([]domain.Case{out})
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a case",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "code", Required: true},
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"code": c.String("code"), "title": c.String("title")}
					if c.IsSet("description") {
						params["description"] = c.String("description")
					}
					var out domain.Case
					if err := rpcCall(ctx, cfg, "cases.create", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCases([]domain.Case{out})
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update a case",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "code"},
					&cli.StringFlag{Name: "title"},
					&cli.StringFlag{Name: "description"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"id": c.Uint("id")}
					for _, name := range []string{"code", "title", "description"} {
						if c.IsSet(name) {
							params[name] = c.String(name)
						}
					}
					var out domain.Case
					if err := rpcCall(ctx, cfg, "cases.update", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCases([]domain.Case{out})
					return nil
				},
			},
			deleteCommand("Delete a case (audio files cascade)", "cases.delete"),
		},
	}
}

func audioCommand() *cli.Command {
	return &cli.Command{
		Name:  "audio",
		Usage: "Audio file commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List audio files of a case",
				Flags: []cli.Flag{&cli.UintFlag{Name: "case-id", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.AudioFile
					if err := rpcCall(ctx, cfg, "audio.list", map[string]any{"case_id": c.Uint("case-id")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printAudioFiles(out)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Show one audio file",
				Flags: []cli.Flag{&cli.UintFlag{Name: "id", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out domain.AudioFile
					if err := rpcCall(ctx, cfg, "audio.get", map[string]any{"id": c.Uint("id")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printAudioFiles([]domain.AudioFile{out})
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Register an audio file",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "case-id", Required: true},
					&cli.StringFlag{Name: "file-name", Required: true},
					&cli.StringFlag{Name: "file-path", Required: true},
					&cli.FloatFlag{Name: "duration"},
					&cli.StringFlag{Name: "status"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{
						"case_id":   c.Uint("case-id"),
						"file_name": c.String("file-name"),
						"file_path": c.String("file-path"),
					}
					if c.IsSet("duration") {
						params["duration"] = c.Float("duration")
					}
					if c.IsSet("status") {
						params["status"] = c.String("status")
					}
					var out domain.AudioFile
					if err := rpcCall(ctx, cfg, "audio.create", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printAudioFiles([]domain.AudioFile{out})
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update an audio file",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "file-name"},
					&cli.FloatFlag{Name: "duration"},
					&cli.StringFlag{Name: "status"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"id": c.Uint("id")}
					if c.IsSet("file-name") {
						params["file_name"] = c.String("file-name")
					}
					if c.IsSet("duration") {
						params["duration"] = c.Float("duration")
					}
					if c.IsSet("status") {
						params["status"] = c.String("status")
					}
					var out domain.AudioFile
					if err := rpcCall(ctx, cfg, "audio.update", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printAudioFiles([]domain.AudioFile{out})
					return nil
				},
			},
			deleteCommand("Delete an audio file (transcript cascades)", "audio.delete"),
		},
	}
}

func speakersCommand() *cli.Command {
	return &cli.Command{
		Name:  "speakers",
		Usage: "Speaker commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List speakers",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.Speaker
					if err := rpcCall(ctx, cfg, "speakers.list", nil, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSpeakers(out)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Show one speaker",
				Flags: []cli.Flag{&cli.UintFlag{Name: "id", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out domain.Speaker
					if err := rpcCall(ctx, cfg, "speakers.get", map[string]any{"id": c.Uint("id")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSpeakers([]domain.Speaker{out})
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a speaker profile",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "alias"},
					&cli.StringFlag{Name: "gender"},
					&cli.StringFlag{Name: "age-estimate"},
					&cli.StringFlag{Name: "notes"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"name": c.String("name")}
					if c.IsSet("alias") {
						params["alias"] = c.String("alias")
					}
					if c.IsSet("gender") {
						params["gender"] = c.String("gender")
					}
					if c.IsSet("age-estimate") {
						params["age_estimate"] = c.String("age-estimate")
					}
					if c.IsSet("notes") {
						params["notes"] = c.String("notes")
					}
					var out domain.Speaker
					if err := rpcCall(ctx, cfg, "speakers.create", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSpeakers([]domain.Speaker{out})
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update a speaker profile",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "alias"},
					&cli.StringFlag{Name: "gender"},
					&cli.StringFlag{Name: "age-estimate"},
					&cli.StringFlag{Name: "notes"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"id": c.Uint("id")}
					if c.IsSet("name") {
						params["name"] = c.String("name")
					}
					if c.IsSet("alias") {
						params["alias"] = c.String("alias")
					}
					if c.IsSet("gender") {
						params["gender"] = c.String("gender")
					}
					if c.IsSet("age-estimate") {
						params["age_estimate"] = c.String("age-estimate")
					}
					if c.IsSet("notes") {
						params["notes"] = c.String("notes")
					}
					var out domain.Speaker
					if err := rpcCall(ctx, cfg, "speakers.update", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSpeakers([]domain.Speaker{out})
					return nil
				},
			},
			deleteCommand("Delete a speaker (samples cascade, transcript links clear)", "speakers.delete"),
		},
	}
}

func samplesCommand() *cli.Command {
	return &cli.Command{
		Name:  "samples",
		Usage: "Voice sample commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List voice samples of a speaker",
				Flags: []cli.Flag{&cli.UintFlag{Name: "speaker-id", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.VoiceSample
					if err := rpcCall(ctx, cfg, "samples.list", map[string]any{"speaker_id": c.Uint("speaker-id")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printVoiceSamples(out)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Register a voice sample",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "speaker-id", Required: true},
					&cli.StringFlag{Name: "file-name", Required: true},
					&cli.StringFlag{Name: "file-path", Required: true},
					&cli.FloatFlag{Name: "duration"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out domain.VoiceSample
					err = rpcCall(ctx, cfg, "samples.create", map[string]any{
						"speaker_id": c.Uint("speaker-id"),
						"file_name":  c.String("file-name"),
						"file_path":  c.String("file-path"),
						"duration":   c.Float("duration"),
					}, &out)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printVoiceSamples([]domain.VoiceSample{out})
					return nil
				},
			},
			deleteCommand("Delete a voice sample", "samples.delete"),
		},
	}
}

func transcriptsCommand() *cli.Command {
	return &cli.Command{
		Name:  "transcripts",
		Usage: "Transcript segment commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List segments of an audio file",
				Flags: []cli.Flag{&cli.UintFlag{Name: "audio-file-id", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.TranscriptSegment
					if err := rpcCall(ctx, cfg, "transcripts.list", map[string]any{"audio_file_id": c.Uint("audio-file-id")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSegments(out)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Add one segment",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "audio-file-id", Required: true},
					&cli.UintFlag{Name: "speaker-id"},
					&cli.FloatFlag{Name: "start", Required: true},
					&cli.FloatFlag{Name: "end", Required: true},
					&cli.StringFlag{Name: "text", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{
						"audio_file_id": c.Uint("audio-file-id"),
						"start_time":    c.Float("start"),
						"end_time":      c.Float("end"),
						"text":          c.String("text"),
					}
					if c.IsSet("speaker-id") {
						params["speaker_id"] = c.Uint("speaker-id")
					}
					var out domain.TranscriptSegment
					if err := rpcCall(ctx, cfg, "transcripts.create", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSegments([]domain.TranscriptSegment{out})
					return nil
				},
			},
			{
				Name:  "import",
				Usage: "Bulk import segments from a JSON file",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "audio-file-id", Required: true},
					&cli.StringFlag{Name: "file", Required: true, Usage: "JSON array of segments"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					data, err := os.ReadFile(c.String("file"))
					if err != nil {
						return err
					}
					var segments []domain.NewTranscriptSegment
					if err := json.Unmarshal(data, &segments); err != nil {
						return err
					}
					var out struct {
						Created int `json:"created"`
					}
					err = rpcCall(ctx, cfg, "transcripts.bulk_create", map[string]any{
						"audio_file_id": c.Uint("audio-file-id"),
						"segments":      segments,
					}, &out)
					if err != nil {
						return err
					}
					fmt.Printf("imported %d segments\n", out.Created)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Correct a segment",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.UintFlag{Name: "speaker-id"},
					&cli.StringFlag{Name: "text"},
					&cli.BoolFlag{Name: "deleted", Usage: "set the soft-delete flag"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"id": c.Uint("id")}
					if c.IsSet("speaker-id") {
						params["speaker_id"] = c.Uint("speaker-id")
					}
					if c.IsSet("text") {
						params["text"] = c.String("text")
					}
					if c.IsSet("deleted") {
						params["is_deleted"] = c.Bool("deleted")
					}
					var out domain.TranscriptSegment
					if err := rpcCall(ctx, cfg, "transcripts.update", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSegments([]domain.TranscriptSegment{out})
					return nil
				},
			},
			deleteCommand("Remove a segment permanently", "transcripts.delete"),
		},
	}
}

func alertsCommand() *cli.Command {
	return &cli.Command{
		Name:  "alerts",
		Usage: "Alert word commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List alert words",
				Flags: []cli.Flag{&cli.StringFlag{Name: "category"}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.AlertWord
					if err := rpcCall(ctx, cfg, "alerts.list", map[string]any{"category": c.String("category")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printAlertWords(out)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Add an alert word",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "keyword", Required: true},
					&cli.StringFlag{Name: "category", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"keyword": c.String("keyword"), "category": c.String("category")}
					if c.IsSet("description") {
						params["description"] = c.String("description")
					}
					var out domain.AlertWord
					if err := rpcCall(ctx, cfg, "alerts.create", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printAlertWords([]domain.AlertWord{out})
					return nil
				},
			},
			deleteCommand("Remove an alert word", "alerts.delete"),
		},
	}
}

func replacementsCommand() *cli.Command {
	return &cli.Command{
		Name:  "replacements",
		Usage: "Replacement word commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List replacement words",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.ReplacementWord
					if err := rpcCall(ctx, cfg, "replacements.list", nil, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printReplacementWords(out)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Add a replacement word",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "original", Required: true},
					&cli.StringFlag{Name: "correct", Required: true},
					&cli.StringFlag{Name: "category", Value: "general"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out domain.ReplacementWord
					err = rpcCall(ctx, cfg, "replacements.create", map[string]any{
						"original": c.String("original"),
						"correct":  c.String("correct"),
						"category": c.String("category"),
					}, &out)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printReplacementWords([]domain.ReplacementWord{out})
					return nil
				},
			},
			deleteCommand("Remove a replacement word", "replacements.delete"),
		},
	}
}

func notificationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "notifications",
		Usage: "Notification commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List notifications",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.Notification
					if err := rpcCall(ctx, cfg, "notifications.list", nil, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printNotifications(out)
					return nil
				},
			},
			{
				Name:  "unread-count",
				Usage: "Count unread notifications",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out struct {
						Count int64 `json:"count"`
					}
					if err := rpcCall(ctx, cfg, "notifications.unread_count", nil, &out); err != nil {
						return err
					}
					fmt.Println(out.Count)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a notification",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Required: true},
					&cli.StringFlag{Name: "action", Required: true},
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "message"},
					&cli.StringFlag{Name: "entity-type"},
					&cli.UintFlag{Name: "entity-id"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{
						"notification_type": c.String("type"),
						"action":            c.String("action"),
						"title":             c.String("title"),
					}
					if c.IsSet("message") {
						params["message"] = c.String("message")
					}
					if c.IsSet("entity-type") {
						params["entity_type"] = c.String("entity-type")
					}
					if c.IsSet("entity-id") {
						params["entity_id"] = c.Uint("entity-id")
					}
					var out domain.Notification
					if err := rpcCall(ctx, cfg, "notifications.create", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printNotifications([]domain.Notification{out})
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Mark a notification read or important",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "read"},
					&cli.BoolFlag{Name: "important"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"id": c.Uint("id")}
					if c.IsSet("read") {
						params["is_read"] = c.Bool("read")
					}
					if c.IsSet("important") {
						params["is_important"] = c.Bool("important")
					}
					var out domain.Notification
					if err := rpcCall(ctx, cfg, "notifications.update", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printNotifications([]domain.Notification{out})
					return nil
				},
			},
			{
				Name:  "mark-all-read",
				Usage: "Mark every notification read",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out struct {
						Updated int64 `json:"updated"`
					}
					if err := rpcCall(ctx, cfg, "notifications.mark_all_read", nil, &out); err != nil {
						return err
					}
					fmt.Printf("marked %d notifications read\n", out.Updated)
					return nil
				},
			},
			deleteCommand("Remove a notification", "notifications.delete"),
		},
	}
}

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "User account commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List accounts",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.PublicUser
					if err := rpcCall(ctx, cfg, "users.list", nil, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUsers(out)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Show one account",
				Flags: []cli.Flag{&cli.UintFlag{Name: "id", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out domain.PublicUser
					if err := rpcCall(ctx, cfg, "users.get", map[string]any{"id": c.Uint("id")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUser(out)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "role", Value: "investigator"},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out domain.PublicUser
					err = rpcCall(ctx, cfg, "users.create", map[string]any{
						"name":     c.String("name"),
						"email":    c.String("email"),
						"role":     c.String("role"),
						"username": c.String("username"),
						"password": c.String("password"),
					}, &out)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUser(out)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update an account",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "role"},
					&cli.StringFlag{Name: "avatar"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{"id": c.Uint("id")}
					for _, name := range []string{"name", "email", "role", "avatar"} {
						if c.IsSet(name) {
							params[name] = c.String(name)
						}
					}
					var out domain.PublicUser
					if err := rpcCall(ctx, cfg, "users.update", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUser(out)
					return nil
				},
			},
			{
				Name:  "set-active",
				Usage: "Enable or disable an account",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "active"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					err = rpcCall(ctx, cfg, "users.set_active", map[string]any{
						"id":     c.Uint("id"),
						"active": c.Bool("active"),
					}, nil)
					if err != nil {
						return err
					}
					fmt.Println("ok")
					return nil
				},
			},
			deleteCommand("Delete an account (activity entries keep a null user)", "users.delete"),
		},
	}
}

func activityCommand() *cli.Command {
	return &cli.Command{
		Name:  "activity",
		Usage: "Activity log commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recent activity",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.ActivityLog
					if err := rpcCall(ctx, cfg, "activity.list", nil, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printActivity(out)
					return nil
				},
			},
			{
				Name:  "by-action",
				Usage: "List recent activity for one action",
				Flags: []cli.Flag{&cli.StringFlag{Name: "action", Required: true}, &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []domain.ActivityLog
					if err := rpcCall(ctx, cfg, "activity.by_action", map[string]any{"action": c.String("action")}, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printActivity(out)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Write an activity entry",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "action", Required: true},
					&cli.StringFlag{Name: "target-type", Required: true},
					&cli.UintFlag{Name: "target-id"},
					&cli.StringFlag{Name: "details"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					params := map[string]any{
						"action":      c.String("action"),
						"target_type": c.String("target-type"),
					}
					if cfg.UserID != nil {
						params["user_id"] = *cfg.UserID
					}
					if c.IsSet("target-id") {
						params["target_id"] = c.Uint("target-id")
					}
					if c.IsSet("details") {
						params["details"] = c.String("details")
					}
					var out domain.ActivityLog
					if err := rpcCall(ctx, cfg, "activity.create", params, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printActivity([]domain.ActivityLog{out})
					return nil
				},
			},
			{
				Name:  "cleanup",
				Usage: "Delete activity entries older than N days",
				Flags: []cli.Flag{&cli.IntFlag{Name: "days", Value: 90}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out struct {
						Deleted int64 `json:"deleted"`
					}
					if err := rpcCall(ctx, cfg, "activity.cleanup", map[string]any{"days": c.Int("days")}, &out); err != nil {
						return err
					}
					fmt.Printf("deleted %d entries\n", out.Deleted)
					return nil
				},
			},
		},
	}
}

func deleteCommand(usage, method string) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: usage,
		Flags: []cli.Flag{&cli.UintFlag{Name: "id", Required: true}},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := rpcCall(ctx, cfg, method, map[string]any{"id": c.Uint("id")}, nil); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
}

func jsonMarshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
