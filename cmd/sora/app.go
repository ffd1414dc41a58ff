package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/soracell/sora/pkg/sora"
	"github.com/soracell/sora/pkg/sora/navigation"
	"github.com/soracell/sora/pkg/sora/router"
	"go.uber.org/atomic"
)

// app holds the state shared by all screens.
type app struct {
	cfg      sora.Config
	sessions *sora.SessionStore
	bar      *sora.TabBar
	logger   *slog.Logger
	now      func() time.Time

	download *download

	selectedPlan  string
	notifications bool
	autoRenewal   bool
	dataAlerts    bool
}

func newApp(cfg sora.Config) *app {
	return &app{
		cfg:           cfg,
		sessions:      sora.NewSessionStore(cfg.SessionPath),
		logger:        sora.GetLogger(),
		now:           time.Now,
		download:      newDownload(uint64(time.Now().UnixNano())),
		selectedPlan:  "starter",
		notifications: true,
		autoRenewal:   true,
		dataAlerts:    true,
	}
}

func (a *app) routes() *router.Router {
	r := router.New()
	r.Register(RouteIndex, a.index)
	r.Register(RouteSignIn, a.signIn)
	r.Register(RouteHome, a.home)
	r.Register(RoutePlans, a.plans)
	r.Register(RouteSettings, a.settings)
	r.Register(RouteProfile, a.profile)
	r.Register(RouteDataUsage, a.dataUsage)
	r.Register(RouteUpdate, a.update)
	r.Register(RouteMore, a.more)
	r.OnTransition(transition)
	return r
}

// index checks the session flag behind the splash.
func (a *app) index(any) (any, error) {
	signedIn, err := sora.Splash(sora.Localize("splash_title"), sora.Localize("splash_subtitle"),
		func() (any, error) { return a.sessions.SignedIn(), nil },
		sora.SplashSettings{MinDuration: 1500 * time.Millisecond, Message: sora.Localize("splash_checking")})
	if err != nil {
		if sora.IsCancelled(err) {
			return exit(), nil
		}
		return nil, err
	}

	if signedIn.(bool) {
		return resetTo(RouteHome), nil
	}
	return resetTo(RouteSignIn), nil
}

func (a *app) signIn(any) (any, error) {
	res, err := sora.InfoScreen(sora.InfoContent{
		Title:    sora.Localize("signin_title"),
		Subtitle: sora.Localize("signin_body"),
		Rows: []sora.ContentRow{
			{Title: sora.Localize("signin_account"), Value: demoAccount, Static: true},
		},
		ActionLabel: sora.Localize("signin_action"),
	}, sora.InfoScreenSettings{DisableBack: true})
	if err != nil {
		if sora.IsCancelled(err) {
			return exit(), nil
		}
		return nil, err
	}
	if res.Action != sora.InfoActionConfirmed {
		return exit(), nil
	}

	_, err = sora.Splash(sora.Localize("splash_title"), sora.Localize("signin_waiting"), func() (any, error) {
		time.Sleep(a.cfg.SignInDelay)
		return nil, a.sessions.Save(sora.Session{Account: demoAccount, SignedInAt: a.now()})
	}, sora.SplashSettings{})
	if err != nil {
		if sora.IsCancelled(err) {
			return exit(), nil
		}
		a.logger.Error("Sign in failed", "error", err)
		return replaceWith(RouteSignIn), nil
	}

	a.logger.Info("Signed in", "account", demoAccount)
	return resetTo(RouteHome), nil
}

// tab runs a tab screen until the bar navigates away, handing row
// selections to onSelect. onSelect returns a non-nil outcome to leave. An
// int input is the row to focus, as stored when the tab pushed a screen.
func (a *app) tab(route router.Route, input any, content func() sora.TabContent, onSelect func(row int, value any) (*outcome, error)) (any, error) {
	initialRow, _ := input.(int)
	for {
		res, err := sora.FloatingNavigation(navigation.RouteID(route), content(), a.bar,
			sora.FloatingNavigationSettings{InitialRow: initialRow})
		if err != nil {
			if !sora.IsCancelled(err) {
				return nil, err
			}
			if a.confirm(sora.Localize("exit_confirm"), sora.Localize("exit")) {
				return exit(), nil
			}
			continue
		}

		switch res.Action {
		case sora.TabActionNavigated:
			return replaceWith(router.Route(res.Route)), nil
		case sora.TabActionSelected:
			initialRow = res.Row
			next, err := onSelect(res.Row, res.Value)
			if err != nil {
				return nil, err
			}
			if next != nil {
				if next.mode == navPush {
					next.resume = res.Row
				}
				return *next, nil
			}
		}
	}
}

func (a *app) home(input any) (any, error) {
	return a.tab(RouteHome, input, a.homeContent, func(_ int, value any) (*outcome, error) {
		if r, ok := value.(router.Route); ok {
			o := push(r)
			return &o, nil
		}
		return nil, nil
	})
}

func (a *app) homeContent() sora.TabContent {
	account := ""
	if s, err := a.sessions.Load(); err == nil && s != nil {
		account = s.Account
	}
	plan, _ := planByID(a.selectedPlan)

	return sora.TabContent{
		Title:    sora.Localize(greetingID(a.now().Hour())),
		Subtitle: account,
		Rows: []sora.ContentRow{
			{Title: sora.Localize("current_plan"), Subtitle: plan.Description, Value: plan.Name, Static: true},
			{
				Title:    sora.Localize("data_usage_title"),
				Subtitle: usageSummary(currentUsage),
				Value:    fmt.Sprintf("%d%%", currentUsage.Percent()),
				Data:     RouteDataUsage,
			},
			{Title: sora.Localize("profile_title"), Subtitle: account, Data: RouteProfile},
		},
	}
}

// greetingID picks the greeting for an hour of the day.
func greetingID(hour int) string {
	switch {
	case hour < 12:
		return "greeting_morning"
	case hour < 18:
		return "greeting_afternoon"
	default:
		return "greeting_evening"
	}
}

func usageSummary(u Usage) string {
	return sora.LocalizeWith("usage_summary", map[string]any{
		"Used":  fmt.Sprintf("%.1f hrs", u.UsedHours),
		"Total": fmt.Sprintf("%.0f hrs", u.TotalHours),
	})
}

func (a *app) plans(input any) (any, error) {
	return a.tab(RoutePlans, input, a.plansContent, func(_ int, value any) (*outcome, error) {
		plan, ok := planByID(fmt.Sprint(value))
		if !ok {
			return nil, nil
		}
		a.selectedPlan = plan.ID
		a.logger.Info("Plan selected", "plan", plan.ID)
		a.alert(sora.LocalizeWith("plan_selected", map[string]any{"Name": plan.Name}))
		return nil, nil
	})
}

func (a *app) plansContent() sora.TabContent {
	rows := make([]sora.ContentRow, len(plans))
	for i, p := range plans {
		title := p.Name
		if p.ID == a.selectedPlan {
			title = "✓ " + title
		}
		rows[i] = sora.ContentRow{
			Title:    title,
			Subtitle: fmt.Sprintf("%s · %s", p.Description, p.Hours),
			Value:    p.Price,
			Data:     p.ID,
		}
	}
	return sora.TabContent{Title: sora.Localize("plans_title"), Subtitle: sora.Localize("plans_subtitle"), Rows: rows}
}

type settingsAction string

const (
	settingNotifications settingsAction = "notifications"
	settingAutoRenewal   settingsAction = "auto_renewal"
	settingDataAlerts    settingsAction = "data_alerts"
	settingAbout         settingsAction = "about"
	settingSignOut       settingsAction = "sign_out"
)

func onOff(v bool) string {
	if v {
		return sora.Localize("toggle_on")
	}
	return sora.Localize("toggle_off")
}

func (a *app) settingsContent() sora.TabContent {
	return sora.TabContent{
		Title: sora.Localize("settings_title"),
		Rows: []sora.ContentRow{
			{Title: sora.Localize("profile_title"), Subtitle: sora.Localize("profile_subtitle"), Data: RouteProfile},
			{Title: sora.Localize("data_usage_title"), Subtitle: sora.Localize("data_usage_subtitle"), Data: RouteDataUsage},
			{Title: sora.Localize("notifications"), Value: onOff(a.notifications), Data: settingNotifications},
			{Title: sora.Localize("auto_renewal"), Value: onOff(a.autoRenewal), Data: settingAutoRenewal},
			{Title: sora.Localize("data_alerts"), Value: onOff(a.dataAlerts), Data: settingDataAlerts},
			{Title: sora.Localize("update_title"), Subtitle: sora.Localize("update_subtitle"), Data: RouteUpdate},
			{Title: sora.Localize("about"), Value: appVersion, Data: settingAbout},
			{Title: sora.Localize("more_title"), Subtitle: sora.Localize("more_subtitle"), Data: RouteMore},
			{Title: sora.Localize("sign_out"), Data: settingSignOut},
		},
	}
}

func (a *app) settings(input any) (any, error) {
	return a.tab(RouteSettings, input, a.settingsContent, func(_ int, value any) (*outcome, error) {
		switch v := value.(type) {
		case router.Route:
			o := push(v)
			return &o, nil

		case settingsAction:
			switch v {
			case settingNotifications:
				a.notifications = !a.notifications
			case settingAutoRenewal:
				a.autoRenewal = !a.autoRenewal
			case settingDataAlerts:
				a.dataAlerts = !a.dataAlerts
			case settingAbout:
				a.alert(sora.LocalizeWith("about_body", map[string]any{"Version": appVersion, "Build": appBuild}))
			case settingSignOut:
				if !a.confirm(sora.Localize("sign_out_confirm"), sora.Localize("sign_out")) {
					return nil, nil
				}
				if err := a.sessions.Clear(); err != nil {
					return nil, fmt.Errorf("sign out: %w", err)
				}
				a.logger.Info("Signed out")
				o := resetTo(RouteSignIn)
				return &o, nil
			}
		}
		return nil, nil
	})
}

// secondary shows an InfoScreen and goes back when it is dismissed. onConfirm
// runs the action button and may return an outcome to leave the screen.
func (a *app) secondary(content sora.InfoContent, onConfirm func() (*outcome, error)) (any, error) {
	for {
		res, err := sora.InfoScreen(content, sora.InfoScreenSettings{})
		if err != nil {
			if sora.IsCancelled(err) {
				return exit(), nil
			}
			return nil, err
		}
		if res.Action == sora.InfoActionBack || onConfirm == nil {
			return back(), nil
		}
		next, err := onConfirm()
		if err != nil && !sora.IsCancelled(err) {
			return nil, err
		}
		if next != nil {
			return *next, nil
		}
	}
}

func (a *app) profile(any) (any, error) {
	session, err := a.sessions.Load()
	if err != nil {
		a.logger.Warn("Profile without session", "error", err)
	}
	rows := []sora.ContentRow{}
	if session != nil {
		rows = append(rows,
			sora.ContentRow{Title: sora.Localize("profile_email"), Value: session.Account, Static: true},
			sora.ContentRow{Title: sora.Localize("profile_since"), Value: session.SignedInAt.Format("Jan 2, 2006"), Static: true},
		)
	}
	plan, _ := planByID(a.selectedPlan)
	rows = append(rows, sora.ContentRow{Title: sora.Localize("current_plan"), Value: plan.Name, Static: true})

	return a.secondary(sora.InfoContent{Title: sora.Localize("profile_title"), Rows: rows}, nil)
}

func (a *app) dataUsage(any) (any, error) {
	rows := []sora.ContentRow{
		{Title: sora.Localize("current_plan"), Value: currentUsage.Plan},
		{Title: sora.Localize("data_usage_title"), Subtitle: usageSummary(currentUsage), Value: fmt.Sprintf("%d%%", currentUsage.Percent())},
		{Title: sora.Localize("renewal"), Subtitle: currentUsage.RenewalOn,
			Value: sora.LocalizePlural("days_left", currentUsage.DaysLeft, nil)},
	}
	for _, d := range dailyUsage {
		rows = append(rows, sora.ContentRow{Title: d.Day, Subtitle: d.Date, Value: fmt.Sprintf("%.1f hrs", d.Hours)})
	}

	return a.secondary(sora.InfoContent{
		Title:       sora.Localize("data_usage_title"),
		Rows:        rows,
		ActionLabel: sora.Localize("set_alert"),
	}, func() (*outcome, error) {
		res, err := sora.SelectionMessage(sora.Localize("set_alert_body"), []sora.SelectionOption{
			{DisplayName: "80%", Value: 80},
			{DisplayName: "90%", Value: 90},
			{DisplayName: sora.Localize("upgrade_plan"), Value: RoutePlans},
		}, sora.SelectionMessageSettings{})
		if err != nil {
			return nil, err
		}
		if route, ok := res.SelectedValue.(router.Route); ok {
			o := push(route)
			return &o, nil
		}
		a.logger.Info("Usage alert set", "percent", res.SelectedValue)
		a.alert(sora.LocalizeWith("alert_set", map[string]any{"Percent": res.SelectedValue}))
		return nil, nil
	})
}

func (a *app) update(any) (any, error) {
	rows := []sora.ContentRow{
		{Title: sora.Localize("update_installed"), Value: availableUpdate.CurrentVersion},
		{Title: sora.Localize("update_available"), Subtitle: availableUpdate.Size, Value: availableUpdate.Version},
	}

	return a.secondary(sora.InfoContent{
		Title:       sora.Localize("update_title"),
		Rows:        rows,
		ActionLabel: sora.Localize("update_install"),
	}, func() (*outcome, error) {
		_, err := sora.Splash(sora.Localize("update_title"), availableUpdate.Version, a.download.run, sora.SplashSettings{
			Message:  sora.Localize("update_downloading"),
			Progress: a.download.progress.Load,
		})
		if err != nil {
			return nil, err
		}
		a.alert(sora.Localize("update_done"))
		return nil, nil
	})
}

// download simulates the update download: every tick adds a random step
// of up to maxStep until it completes, then it holds briefly at full.
type download struct {
	progress atomic.Float64
	rng      *rand.Rand
	sleep    func(time.Duration)
	tick     time.Duration
	maxStep  float64
	finish   time.Duration
}

func newDownload(seed uint64) *download {
	return &download{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		sleep:   time.Sleep,
		tick:    300 * time.Millisecond,
		maxStep: 0.15,
		finish:  500 * time.Millisecond,
	}
}

func (d *download) run() (any, error) {
	d.progress.Store(0)
	for p := 0.0; p < 1; {
		d.sleep(d.tick)
		p = min(1, p+d.rng.Float64()*d.maxStep)
		d.progress.Store(p)
	}
	d.sleep(d.finish)
	return nil, nil
}

func (a *app) more(any) (any, error) {
	rows := make([]sora.ContentRow, len(moreEntries))
	for i, e := range moreEntries {
		rows[i] = sora.ContentRow{Title: e.Title, Subtitle: e.Subtitle}
	}
	return a.secondary(sora.InfoContent{Title: sora.Localize("more_title"), Rows: rows}, nil)
}

func (a *app) alert(message string) {
	_, err := sora.SelectionMessage(message, []sora.SelectionOption{{DisplayName: sora.Localize("ok")}}, sora.SelectionMessageSettings{})
	if err != nil && !sora.IsCancelled(err) {
		a.logger.Error("Alert failed", "error", err)
	}
}

// confirm asks a cancel/confirm question and reports whether the user confirmed.
func (a *app) confirm(message, action string) bool {
	res, err := sora.SelectionMessage(message, []sora.SelectionOption{
		{DisplayName: sora.Localize("cancel"), Value: false},
		{DisplayName: action, Value: true},
	}, sora.SelectionMessageSettings{})
	if err != nil {
		if !errors.Is(err, sora.ErrCancelled) {
			a.logger.Error("Confirmation failed", "error", err)
		}
		return false
	}
	return res.SelectedValue.(bool)
}
