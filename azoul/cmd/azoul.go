// Command azoul is the operator CLI: a terminal chat with the assistant
// plus database chores.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"azoul/azoul/chat"
	"azoul/azoul/config"
	"azoul/azoul/middlewares"
	"azoul/azoul/services/assistant"
	"azoul/azoul/sources/psql"
	"azoul/azoul/sources/psql/dao"
	"azoul/azoul/sources/psql/models"
	"azoul/azoul/utils/color"
	"azoul/azoul/utils/jsonutils"
	"azoul/azoul/utils/logging"
	"azoul/azoul/utils/scraper"

	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	langFlag = cli.StringFlag{
		Name:  "lang",
		Usage: "conversation language (en, fr, ar, ber)",
		Value: chat.DefaultLanguage,
	}
	remoteFlag = cli.BoolFlag{
		Name:  "remote",
		Usage: "ask the server at ASSISTANT_URL instead of the local engine",
	}
	subjectFlag = cli.StringFlag{
		Name:  "subject",
		Usage: "token subject (operator email)",
		Value: "admin",
	}
	ttlFlag = cli.DurationFlag{
		Name:  "ttl",
		Usage: "token lifetime",
		Value: 24 * time.Hour,
	}
	urlFlag = cli.StringFlag{
		Name:  "url",
		Usage: "page listing destination cards",
	}
	fileFlag = cli.StringFlag{
		Name:  "file",
		Usage: "local HTML file listing destination cards",
	}
	dryRunFlag = cli.BoolFlag{
		Name:  "dry-run",
		Usage: "print the parsed destinations instead of saving them",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "azoul"
	app.Usage = "Azoul Morocco assistant and back-office tools"
	app.Version = "v1.0.0"
	app.Commands = []cli.Command{
		commandChat,
		commandMigrate,
		commandToken,
		commandImport,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		os.Exit(1)
	}
}

var commandChat = cli.Command{
	Name:   "chat",
	Usage:  "talk to the travel assistant in the terminal",
	Flags:  []cli.Flag{langFlag, remoteFlag},
	Action: runChat,
}

var commandMigrate = cli.Command{
	Name:   "migrate",
	Usage:  "create or update the content tables",
	Action: runMigrate,
}

var commandToken = cli.Command{
	Name:   "token",
	Usage:  "mint an admin bearer token for the back-office API",
	Flags:  []cli.Flag{subjectFlag, ttlFlag},
	Action: runToken,
}

var commandImport = cli.Command{
	Name:   "import",
	Usage:  "import destinations from an HTML page",
	Flags:  []cli.Flag{urlFlag, fileFlag, dryRunFlag},
	Action: runImport,
}

func setup() (config.Config, *chat.Engine, error) {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	pb, err := chat.LoadPhrasebook(cfg.PhrasebookPath)
	if err != nil {
		return cfg, nil, err
	}
	engine, err := chat.NewEngineFromPhrasebook(pb, nil)
	return cfg, engine, err
}

func runChat(c *cli.Context) error {
	cfg, engine, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()
	lang := chat.NormalizeLanguage(c.String(langFlag.Name))

	var ask func(ctx context.Context, text string) (string, error)
	var session *chat.Session
	if c.Bool(remoteFlag.Name) {
		client := assistant.NewClient(cfg.AssistantURL, cfg.AssistantTimeout, engine)
		ask = func(ctx context.Context, text string) (string, error) {
			answer := client.Ask(ctx, text)
			if answer.Fallback {
				fmt.Println(color.ColorWarning("(server unreachable, local answer)"))
			}
			return answer.Text, nil
		}
		fmt.Println(color.Banner("Azoul Morocco"), color.ColorDim("remote: "+cfg.AssistantURL))
		fmt.Println(color.ColorAssistant(engine.Text(lang, chat.MsgWelcome)))
	} else {
		replies := make(chan chat.Message, 1)
		session = chat.NewSession(engine,
			chat.WithDelay(cfg.ReplyDelay),
			chat.WithLanguage(lang),
			chat.WithReplyHandler(func(m chat.Message) { replies <- m }),
		)
		defer session.Close()
		ask = func(ctx context.Context, text string) (string, error) {
			if _, err := session.Submit(text); err != nil {
				return "", err
			}
			select {
			case m := <-replies:
				return m.Text, nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		fmt.Println(color.Banner("Azoul Morocco"), color.ColorDim("language: "+lang))
		if welcome, ok := session.Open(); ok {
			fmt.Println(color.ColorAssistant(welcome.Text))
		}
	}
	fmt.Println(color.ColorDim("Type 'exit' to quit."))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.ColorPrompt("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ReplyDelay+cfg.AssistantTimeout)
		reply, err := ask(ctx, line)
		cancel()
		if err != nil {
			fmt.Println(color.ColorError(err.Error()))
			continue
		}
		fmt.Println(color.ColorAssistant("azoul> " + reply))
	}
	if session != nil {
		logging.AppLogger.Info("terminal chat ended", zap.Int("messages", len(session.Messages())))
	}
	fmt.Println(color.ColorInfo("Beslama!"))
	return nil
}

func openDatabase(ctx context.Context, cfg config.Config) (*psql.Database, error) {
	if !cfg.DatabaseEnabled() {
		return nil, errors.New("DB_HOST and DB_NAME must be set")
	}
	return psql.NewDatabase(ctx, cfg)
}

func runMigrate(c *cli.Context) error {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	fmt.Println(color.ColorInfo(fmt.Sprintf("migrated %d tables", len(models.All()))))
	return nil
}

func runToken(c *cli.Context) error {
	cfg := config.LoadConfig()
	token, err := middlewares.IssueAdminToken(cfg.JWTSecret, c.String(subjectFlag.Name), c.Duration(ttlFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runImport(c *cli.Context) error {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var destinations []models.Destination
	var err error
	switch {
	case c.String(urlFlag.Name) != "":
		client := &http.Client{Timeout: 30 * time.Second}
		destinations, err = scraper.FetchDestinations(ctx, client, c.String(urlFlag.Name))
	case c.String(fileFlag.Name) != "":
		destinations, err = importFile(c.String(fileFlag.Name))
	default:
		return errors.New("one of --url or --file is required")
	}
	if err != nil {
		return err
	}

	if c.Bool(dryRunFlag.Name) {
		fmt.Println(jsonutils.ToJSON(destinations))
		return nil
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	destinationDAO := dao.NewDestinationDAO(db.DB)

	var created, skipped int
	for i := range destinations {
		d := &destinations[i]
		if err := d.Validate(); err != nil {
			logging.AppLogger.Warn("skipping destination", zap.String("name", d.Name), zap.Error(err))
			skipped++
			continue
		}
		ok, err := destinationDAO.Upsert(ctx, d)
		if err != nil {
			return err
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}
	fmt.Println(color.ColorInfo(fmt.Sprintf("imported %d destinations, %d already present", created, skipped)))
	return nil
}

func importFile(path string) ([]models.Destination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scraper.ParseDestinations(f, "text/html")
}
