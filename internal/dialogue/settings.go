package dialogue

import (
	"context"

	"github.com/m3rciful/barbot/internal/errs"
	"github.com/m3rciful/barbot/internal/session"
	"github.com/m3rciful/barbot/internal/settings"
)

func (c *Controller) onSettingsButton(ctx context.Context, chatID int64, prefs settings.Settings, key string) (session.State, error) {
	switch key {
	case KeyName:
		if err := c.ch.SendText(ctx, chatID, c.tr.T(prefs.Language, "prompt.display_name")); err != nil {
			return nil, err
		}
		return session.AwaitingSettingsField{Settings: prefs, Field: settings.FieldDisplayName}, nil
	case KeyLimit:
		text := c.tr.T(prefs.Language, "prompt.message_limit", settings.MinLimit, settings.MaxLimit)
		if err := c.ch.SendText(ctx, chatID, text); err != nil {
			return nil, err
		}
		return session.AwaitingSettingsField{Settings: prefs, Field: settings.FieldMessageLimit}, nil
	case KeyImages:
		return c.rerenderSettings(ctx, chatID, prefs.ToggleImages())
	case KeyLanguage:
		return c.rerenderSettings(ctx, chatID, prefs.ToggleLanguage())
	case KeyBack:
		return c.toMainMenu(ctx, chatID, prefs)
	}
	return nil, errs.Ef(errs.Internal, "dialogue.settings", "unknown settings key %q", key)
}

func (c *Controller) rerenderSettings(ctx context.Context, chatID int64, prefs settings.Settings) (session.State, error) {
	if err := c.sendSettingsView(ctx, chatID, prefs); err != nil {
		return nil, err
	}
	return session.ViewingSettings{Settings: prefs}, nil
}

// onSettingsText applies a typed settings value. A rejected value returns
// the validation error and keeps the state for another try.
func (c *Controller) onSettingsText(ctx context.Context, chatID int64, st session.AwaitingSettingsField, text string) (session.State, error) {
	var (
		updated settings.Settings
		err     error
	)
	switch st.Field {
	case settings.FieldDisplayName:
		updated, err = st.Settings.WithDisplayName(text)
	case settings.FieldMessageLimit:
		updated, err = st.Settings.WithLimitText(text)
	default:
		// Language is toggled by a button and never awaits text.
		return nil, errs.Ef(errs.Internal, "dialogue.settings", "field %q does not take text", st.Field)
	}
	if err != nil {
		return nil, err
	}
	return c.toMainMenu(ctx, chatID, updated)
}
