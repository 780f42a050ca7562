package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/phonebook-api/internal/api/shared"
	"github.com/phrazzld/phonebook-api/internal/service"
)

// InfoTimeLayout renders timestamps the way browsers print a Date,
// e.g. "Sat Oct 17 2026 14:03:09 GMT+0300 (EEST)".
const InfoTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// InfoHandler serves the GET /info summary page.
type InfoHandler struct {
	contactService service.ContactService
	now            func() time.Time
	logger         *slog.Logger
}

// NewInfoHandler creates a new InfoHandler. now defaults to time.Now.
func NewInfoHandler(contactService service.ContactService, now func() time.Time, logger *slog.Logger) *InfoHandler {
	if contactService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("contactService cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &InfoHandler{
		contactService: contactService,
		now:            now,
		logger:         logger.With(slog.String("component", "info_handler")),
	}
}

// Info handles GET /info. The count and the timestamp are read at request time.
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	n, err := h.contactService.CountContacts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithHTML(w, r, http.StatusOK, renderInfo(n, h.now()))
}

func renderInfo(count int, at time.Time) string {
	return fmt.Sprintf(
		"<div>Phonebook has info for %d people.</div>\n<br />\n<div>%s</div>\n",
		count,
		at.Format(InfoTimeLayout),
	)
}
