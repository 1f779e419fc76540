package elefren

import (
	"context"

	"github.com/pwoolcoc/elefren/entities"
)

// GetInstance returns metadata about the instance.
func (m *Mastodon) GetInstance(ctx context.Context) (entities.Instance, error) {
	return get[entities.Instance](ctx, m, m.route("/api/v1/instance"))
}

// CustomEmojis returns the custom emojis available on the instance.
func (m *Mastodon) CustomEmojis(ctx context.Context) (*Page[entities.Emoji], error) {
	return getPage[entities.Emoji](ctx, m, m.route("/api/v1/custom_emojis"))
}
