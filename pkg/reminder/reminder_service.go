package reminder

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/entities"
	"github.com/simmi-91/freezer-storage-app/internal/utils/mailing"
	"github.com/simmi-91/freezer-storage-app/pkg/expiry"
	"github.com/simmi-91/freezer-storage-app/pkg/inventory"
)

const defaultDigestWindowDays = 14

type (
	ReminderService interface {
		SendExpiryDigest(ctx context.Context, req domain.SendDigestRequest) (domain.SendDigestResponse, error)
	}

	reminderService struct {
		inventory inventory.InventoryService
		send      func(toEmail, subject, body string) error
	}
)

func NewReminderService(inventoryService inventory.InventoryService) ReminderService {
	return &reminderService{
		inventory: inventoryService,
		send:      mailing.SendMail,
	}
}

// SendExpiryDigest mails a summary of every item that is expired or expiring
// within the window. Nothing is sent when the freezer has no such items.
func (s *reminderService) SendExpiryDigest(_ context.Context, req domain.SendDigestRequest) (domain.SendDigestResponse, error) {
	withinDays := req.WithinDays
	if withinDays <= 0 {
		withinDays = defaultDigestWindowDays
	}

	today := time.Now()
	var urgent []entities.FreezerItem
	for _, item := range s.inventory.List() {
		if expiry.DaysUntil(item.ExpiryDate, today) <= withinDays {
			urgent = append(urgent, item)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].ExpiryDate.Before(urgent[j].ExpiryDate)
	})

	res := domain.SendDigestResponse{Email: req.Email, ItemCount: len(urgent)}
	if len(urgent) == 0 {
		return res, nil
	}

	if err := s.send(req.Email, "Freezer expiry digest", digestBody(urgent, today, withinDays)); err != nil {
		return domain.SendDigestResponse{}, err
	}
	return res, nil
}

func digestBody(items []entities.FreezerItem, today time.Time, withinDays int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%d item(s) need attention in your freezer</h2>", len(items))
	fmt.Fprintf(&b, "<p>Expired or expiring within %d days:</p><ul>", withinDays)
	for _, item := range items {
		// Name and unit are user input and must not leak markup into the mail.
		fmt.Fprintf(&b, "<li><strong>%s</strong> (%s, %.1f %s) &mdash; %s</li>",
			html.EscapeString(item.Name), item.Category, item.Quantity,
			html.EscapeString(item.Unit), expiry.Label(item.ExpiryDate, today))
	}
	b.WriteString("</ul>")
	return b.String()
}
