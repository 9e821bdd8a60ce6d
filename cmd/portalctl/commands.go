package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"college-portal-client/internal/api"
	"college-portal-client/internal/model"
)

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "signup":
		return a.cmdSignup(ctx, args)
	case "demo-login":
		return a.cmdDemoLogin(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "logout":
		a.session.Logout(ctx)
		fmt.Println("Logged out")
		return nil
	case "feed":
		return a.cmdFeed(ctx, args)
	case "stats":
		return a.cmdStats(ctx)
	case "submit":
		return a.cmdSubmit(ctx, args)
	case "serve":
		return a.cmdServe(ctx)
	case "health":
		if err := a.client.Health(ctx); err != nil {
			return fmt.Errorf("portal unhealthy: %w", err)
		}
		fmt.Println("Portal is healthy")
		return nil
	}
	usage()
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	loginID := fs.String("id", "", "student id or phone number")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	student, err := a.session.Login(ctx, *loginID, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", student.Name, student.StudentID)
	return nil
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	profile := &model.SignupProfile{}
	fs.StringVar(&profile.StudentID, "id", "", "student id")
	fs.StringVar(&profile.Name, "name", "", "full name")
	fs.StringVar(&profile.Email, "email", "", "email address")
	fs.StringVar(&profile.Phone, "phone", "", "phone number")
	fs.StringVar(&profile.Password, "password", "", "password")
	fs.StringVar(&profile.ConfirmPassword, "confirm-password", "", "password, again")
	fs.StringVar(&profile.EmergencyContact, "emergency-contact", "", "emergency contact number")
	fs.StringVar(&profile.HostelRoom, "hostel-room", "", "hostel room")
	fs.StringVar(&profile.BloodGroup, "blood-group", "", "blood group")
	fs.Parse(args)

	student, err := a.session.Signup(ctx, profile)
	if err != nil {
		return err
	}
	fmt.Printf("Account created. Logged in as %s (%s)\n", student.Name, student.StudentID)
	return nil
}

func (a *app) cmdDemoLogin(ctx context.Context) error {
	student, err := a.session.DemoLogin(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", student.Name, student.StudentID)
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	state := a.session.CheckSession(ctx)
	if !state.Authenticated {
		fmt.Println("Not authenticated")
		return nil
	}
	return printJSON(state.Student)
}

func (a *app) cmdFeed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	filter := fs.String("filter", model.FilterAll, "service kind or \"all\"")
	reload := fs.Bool("reload", false, "bypass the cached feed")
	fs.Parse(args)

	a.session.CheckSession(ctx)

	load := a.feed.Load
	if *reload {
		load = a.feed.Reload
	}
	requests, err := load(ctx, *filter)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		fmt.Println("No requests found in this category.")
		return nil
	}
	for _, r := range requests {
		fmt.Printf("%-20s #%-5d %-10s %s\n",
			r.Kind.DisplayName(), r.ID, r.Status, r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func (a *app) cmdStats(ctx context.Context) error {
	return printJSON(a.feed.Stats(ctx))
}

// cmdSubmit reads a JSON payload for one service kind from a file or stdin
// and runs it through the submission pipeline.
func (a *app) cmdSubmit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	service := fs.String("service", "", "service kind: outing|xerox|mess|fivestar|ccd|stationary")
	file := fs.String("payload", "-", "payload JSON file, or - for stdin")
	fs.Parse(args)

	kind, ok := model.ParseKind(*service)
	if !ok {
		return fmt.Errorf("unknown service %q", *service)
	}

	data, err := readPayload(*file)
	if err != nil {
		return err
	}

	payload := emptyPayload(kind)
	if err := json.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	a.session.CheckSession(ctx)

	created, err := a.pipeline.Submit(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s submitted successfully (#%d, %s)\n", kind.DisplayName(), created.ID, created.Status)
	return nil
}

func (a *app) cmdServe(ctx context.Context) error {
	a.session.CheckSession(ctx)

	router := api.NewRouter(&a.cfg.Server, a.session, a.feed, a.pipeline)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Dashboard facade listening on port %d\n", a.cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func emptyPayload(kind model.ServiceKind) model.Payload {
	switch kind {
	case model.KindOuting:
		return &model.OutingPayload{}
	case model.KindXerox:
		return &model.XeroxPayload{}
	case model.KindMess:
		return &model.MessPayload{}
	case model.KindFivestar:
		return &model.FivestarPayload{}
	case model.KindCCD:
		return &model.CCDPayload{}
	default:
		return &model.StationaryPayload{}
	}
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
