package store

import (
	"context"

	"github.com/google/uuid"

	"SURUWE_BACK-END/internal/models"
)

const attachmentColumns = `id, order_id, url, type, visible_to_tailor, created_at`

func scanAttachment(row interface{ Scan(...any) error }) (*models.OrderAttachment, error) {
	var a models.OrderAttachment
	err := row.Scan(&a.ID, &a.OrderID, &a.URL, &a.Type, &a.VisibleToTailor, &a.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// CreateAttachment inserts one attachment row for an uploaded image.
func (s *Store) CreateAttachment(ctx context.Context, orderID uuid.UUID, url string, typ models.AttachmentType, visible bool) (*models.OrderAttachment, error) {
	const q = `
insert into order_attachments (order_id, url, type, visible_to_tailor)
values ($1, $2, $3, $4)
returning ` + attachmentColumns
	return scanAttachment(s.pool.QueryRow(ctx, q, orderID, url, typ, visible))
}

// ListAttachments returns an order's attachments oldest first. With
// visibleOnly set, rows hidden from the tailor are filtered out.
func (s *Store) ListAttachments(ctx context.Context, orderID uuid.UUID, visibleOnly bool) ([]models.OrderAttachment, error) {
	q := `select ` + attachmentColumns + ` from order_attachments where order_id = $1`
	if visibleOnly {
		q += ` and visible_to_tailor`
	}
	q += ` order by created_at asc`

	rows, err := s.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	attachments := []models.OrderAttachment{}
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, *a)
	}
	return attachments, translate(rows.Err())
}
