// Package dialogue drives a conversation: for every event it loads the
// session state, decides the next state, talks to the catalog and the chat
// channel and commits the new state.
//
// A transition commits only after every collaborator call succeeded. On
// failure the user gets a message and the previous state stays in place, so
// repeating the input is always safe.
package dialogue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/internal/catalog"
	"github.com/m3rciful/barbot/internal/errs"
	"github.com/m3rciful/barbot/internal/game"
	"github.com/m3rciful/barbot/internal/i18n"
	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/settings"
	"github.com/m3rciful/barbot/internal/suggestion"
)

// Deps are the collaborators of a Controller.
type Deps struct {
	Store       session.Store
	Locker      *session.Locker
	Catalog     catalog.Catalog
	Translator  *i18n.Translator
	Engine      *game.Engine
	Rand        game.Rand
	Suggestions suggestion.Store
	Channel     Channel
}

// Controller is the conversation state machine. It is safe for concurrent
// use; events of one conversation are processed one at a time.
type Controller struct {
	store       session.Store
	locker      *session.Locker
	cat         catalog.Catalog
	tr          *i18n.Translator
	engine      *game.Engine
	rnd         game.Rand
	suggestions suggestion.Store
	ch          Channel
}

// New validates deps and builds a Controller. Locker, Rand and Engine get
// defaults when nil.
func New(d Deps) (*Controller, error) {
	switch {
	case d.Store == nil:
		return nil, errors.New("dialogue: nil session store")
	case d.Catalog == nil:
		return nil, errors.New("dialogue: nil catalog")
	case d.Translator == nil:
		return nil, errors.New("dialogue: nil translator")
	case d.Suggestions == nil:
		return nil, errors.New("dialogue: nil suggestion store")
	case d.Channel == nil:
		return nil, errors.New("dialogue: nil channel")
	}
	if d.Locker == nil {
		d.Locker = session.NewLocker()
	}
	if d.Rand == nil {
		d.Rand = game.NewRand(0)
	}
	if d.Engine == nil {
		d.Engine = game.New(d.Rand, game.Options{Thin: true})
	}
	return &Controller{
		store:       d.Store,
		locker:      d.Locker,
		cat:         d.Catalog,
		tr:          d.Translator,
		engine:      d.Engine,
		rnd:         d.Rand,
		suggestions: d.Suggestions,
		ch:          d.Channel,
	}, nil
}

// Handle processes one event of conversation chatID.
//
// Validation failures re-prompt and return nil. Any other failure is
// reported to the user, leaves the stored state untouched and is returned.
func (c *Controller) Handle(ctx context.Context, chatID int64, ev Event) error {
	unlock, err := c.locker.Lock(ctx, chatID)
	if err != nil {
		return errs.E(errs.Internal, "dialogue.lock", err)
	}
	defer unlock()

	start := time.Now()
	cur, err := c.store.Get(ctx, chatID)
	if err != nil {
		c.fail(ctx, chatID, settings.Default(), err)
		return err
	}
	ctx = logger.WithState(ctx, string(cur.Tag()))
	prefs := cur.Prefs()

	next, err := c.dispatch(ctx, chatID, cur, ev)
	if err != nil {
		if errs.Is(err, errs.Validation) {
			logger.Info(ctx, logger.CompDialogue, "transition",
				slog.String("status", "invalid"),
				slog.String("input", ev.Kind.String()),
				slog.String("msg_id", errs.MessageID(err)),
			)
			return c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, errs.MessageID(err)))
		}
		c.fail(ctx, chatID, prefs, err)
		return err
	}

	nextTag := cur.Tag()
	if next != nil {
		if err := c.store.Set(ctx, chatID, next); err != nil {
			c.fail(ctx, chatID, prefs, err)
			return err
		}
		nextTag = next.Tag()
	}
	logger.Info(ctx, logger.CompDialogue, "transition",
		slog.String("status", "ok"),
		slog.String("input", ev.Kind.String()),
		slog.String("next_state", string(nextTag)),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}

// fail reports err to the user and shows the main menu. Send errors are
// logged only; the original failure is what the caller returns.
func (c *Controller) fail(ctx context.Context, chatID int64, prefs settings.Settings, err error) {
	logger.Error(ctx, logger.CompDialogue, "transition",
		slog.String("status", "fail"),
		slog.String("err_kind", string(errs.KindOf(err))),
		logger.Err(err),
	)
	if sendErr := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "fail.generic", pick(c.rnd, sadEmoji))); sendErr != nil {
		logger.Warn(ctx, logger.CompDialogue, "notify", slog.String("status", "fail"), logger.Err(sendErr))
		return
	}
	if sendErr := c.sendMainMenu(ctx, chatID, prefs); sendErr != nil {
		logger.Warn(ctx, logger.CompDialogue, "notify", slog.String("status", "fail"), logger.Err(sendErr))
	}
}

// dispatch returns the next state, or nil to keep the current one.
func (c *Controller) dispatch(ctx context.Context, chatID int64, cur session.State, ev Event) (session.State, error) {
	switch ev.Kind {
	case EventCommand:
		return c.onCommand(ctx, chatID, cur, ev.Command)
	case EventButton:
		return c.onButton(ctx, chatID, cur, ev.Group, ev.Key)
	case EventText:
		return c.onText(ctx, chatID, cur, ev.Text)
	case EventUnsupported:
		if _, idle := cur.(session.Idle); idle {
			return c.toMainMenu(ctx, chatID, settings.Default())
		}
		return nil, c.unexpected(ctx, chatID, cur.Prefs())
	}
	return nil, errs.Ef(errs.Internal, "dialogue.dispatch", "unknown event kind %d", ev.Kind)
}

func (c *Controller) onCommand(ctx context.Context, chatID int64, cur session.State, name string) (session.State, error) {
	prefs := cur.Prefs()
	switch name {
	case CmdStart:
		return c.toMainMenu(ctx, chatID, prefs)
	case CmdHelp:
		if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "menu.help")); err != nil {
			return nil, err
		}
		return c.toMainMenu(ctx, chatID, prefs)
	case CmdFinish, CmdBack:
		if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "menu.farewell", prefs.Name())); err != nil {
			return nil, err
		}
		return session.Idle{}, nil
	case CmdSuggestions:
		return nil, c.listSuggestions(ctx, chatID, prefs)
	}
	return nil, c.unexpected(ctx, chatID, prefs)
}

func (c *Controller) onButton(ctx context.Context, chatID int64, cur session.State, group, key string) (session.State, error) {
	prefs := cur.Prefs()
	switch group {
	case GroupMenu:
		return c.onMenu(ctx, chatID, prefs, key)
	case GroupSettings:
		return c.onSettingsButton(ctx, chatID, prefs, key)
	case GroupGame:
		g, ok := cur.(session.InGuessingGame)
		if !ok {
			return nil, c.unexpected(ctx, chatID, prefs)
		}
		return c.onGameChoice(ctx, chatID, g, key)
	}
	return nil, errs.Ef(errs.Internal, "dialogue.button", "unknown button group %q", group)
}

func (c *Controller) onMenu(ctx context.Context, chatID int64, prefs settings.Settings, key string) (session.State, error) {
	switch key {
	case KeyFindDrink:
		return c.prompt(ctx, chatID, prefs, session.FindByName, "prompt.find_drink")
	case KeyFindIngredient:
		return c.prompt(ctx, chatID, prefs, session.FindIngredientByName, "prompt.find_ingredient")
	case KeyWithIngredient:
		return c.prompt(ctx, chatID, prefs, session.SearchByIngredient, "prompt.with_ingredient")
	case KeyWithCategory:
		return c.prompt(ctx, chatID, prefs, session.SearchByCategory, "prompt.with_category")
	case KeyIngredients:
		return c.listNames(ctx, chatID, prefs, "list.ingredients", c.cat.ListIngredientNames)
	case KeyCategories:
		return c.listNames(ctx, chatID, prefs, "list.categories", c.cat.ListCategoryNames)
	case KeyGame:
		return c.startGame(ctx, chatID, prefs)
	case KeySettings:
		if err := c.sendSettingsView(ctx, chatID, prefs); err != nil {
			return nil, err
		}
		return session.ViewingSettings{Settings: prefs}, nil
	case KeySuggestion:
		if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "prompt.suggestion")); err != nil {
			return nil, err
		}
		return session.AwaitingSuggestionText{Settings: prefs}, nil
	}
	return nil, errs.Ef(errs.Internal, "dialogue.menu", "unknown menu key %q", key)
}

func (c *Controller) onText(ctx context.Context, chatID int64, cur session.State, text string) (session.State, error) {
	switch st := cur.(type) {
	case session.Idle:
		return c.toMainMenu(ctx, chatID, settings.Default())
	case session.AwaitingFreeText:
		return c.search(ctx, chatID, st, text)
	case session.AwaitingSettingsField:
		return c.onSettingsText(ctx, chatID, st, text)
	case session.AwaitingSuggestionText:
		return c.saveSuggestion(ctx, chatID, st.Settings, text)
	}
	return nil, c.unexpected(ctx, chatID, cur.Prefs())
}

func (c *Controller) prompt(ctx context.Context, chatID int64, prefs settings.Settings, intent session.Intent, msgID string) (session.State, error) {
	if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, msgID)); err != nil {
		return nil, err
	}
	return session.AwaitingFreeText{Settings: prefs, Intent: intent}, nil
}

func (c *Controller) toMainMenu(ctx context.Context, chatID int64, prefs settings.Settings) (session.State, error) {
	if err := c.sendMainMenu(ctx, chatID, prefs); err != nil {
		return nil, err
	}
	return session.AwaitingMainChoice{Settings: prefs}, nil
}

// unexpected answers input the current state has no use for. The state is
// kept.
func (c *Controller) unexpected(ctx context.Context, chatID int64, prefs settings.Settings) error {
	if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "fail.unexpected", prefs.Name(), pick(c.rnd, smileEmoji))); err != nil {
		return err
	}
	return c.sendMainMenu(ctx, chatID, prefs)
}

func (c *Controller) notFound(ctx context.Context, chatID int64, prefs settings.Settings) error {
	if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "fail.not_found", pick(c.rnd, sadEmoji))); err != nil {
		return err
	}
	return c.sendMainMenu(ctx, chatID, prefs)
}
