package deps

import (
	"time"

	"github.com/vmedia/showreel/internal/admin"
	"github.com/vmedia/showreel/internal/gallery"
	"github.com/vmedia/showreel/internal/genai"
	"github.com/vmedia/showreel/internal/logger"
	"github.com/vmedia/showreel/internal/metadata"
	"github.com/vmedia/showreel/internal/persist"
	"github.com/vmedia/showreel/internal/view"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
	AllowedHosts  []string         // Host headers allowed to access the server
	AdminCIDRs    []string         // IPs allowed to call the admin API (empty = no filter)
	TrustProxy    bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Items         *gallery.ItemStore
	Profile       *gallery.ProfileStore
	Syncer        *persist.Syncer
	Sessions      *admin.Manager
	Views         *view.Controller
	GenAI         *genai.Client    // nil when no API key is configured
	Lookup        *metadata.Client // oEmbed title lookup
	AdminPath     string           // reserved marker path for the admin view
	BackupTrigger chan struct{}    // Channel to trigger a manual backup (nil if backups disabled)
	SuggestBurst  int              // rate limit burst for the suggest endpoint
	SuggestPerMin int              // rate limit refill for the suggest endpoint
}
