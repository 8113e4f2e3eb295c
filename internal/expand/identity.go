package expand

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amascaro08/FloHub/internal/instant"
	"github.com/amascaro08/FloHub/internal/model"
)

// identity derives per-instance identifiers from one master event.
// Distinctness within a series comes from the occurrence date suffix; a
// random component is only added when the master has no uid at all.
type identity struct {
	baseUID  string
	slug     string
	masterID string
}

func newIdentity(master model.Event) identity {
	id := identity{baseUID: master.UID()}
	if id.baseUID == "" {
		id.slug = slugTitle(master.Title())
		id.masterID = "master_" + randomSuffix()
	} else {
		id.masterID = id.baseUID
	}
	return id
}

func (id identity) instanceUID(occStart time.Time) string {
	dateKey := occStart.Format(instant.DateKeyLayout)
	if id.baseUID == "" {
		return id.slug + "_" + dateKey + "_" + randomSuffix()
	}
	return id.baseUID + "_" + dateKey
}

func slugTitle(title string) string {
	if title == "" {
		title = "event"
	}
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

func randomSuffix() string {
	return uuid.NewString()[:8]
}
