// Package draft renders committed recipients as an RFC 5322 header block
// and parses address lists for the contacts import.
package draft

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-message/textproto"
	"github.com/google/uuid"

	"github.com/nhle/recipients/internal/model"
)

// messageIDDomain is the right-hand side of generated Message-Ids.
const messageIDDomain = "recipients.local"

// Draft is an unsent message addressed to the committed recipients.
type Draft struct {
	ID      string
	Date    time.Time
	Subject string
	To      []string
}

// New creates a draft for to, stamped with a fresh Message-Id.
func New(to []string, now time.Time) Draft {
	out := make([]string, len(to))
	copy(out, to)
	return Draft{
		ID:   uuid.NewString() + "@" + messageIDDomain,
		Date: now,
		To:   out,
	}
}

// Header builds the mail header for d. Addresses are kept verbatim, so
// entries that fail validation are still written.
func (d Draft) Header() mail.Header {
	var h mail.Header
	h.SetDate(d.Date)
	h.SetMessageID(d.ID)
	if d.Subject != "" {
		h.SetSubject(d.Subject)
	}

	addrs := make([]*mail.Address, len(d.To))
	for i, a := range d.To {
		addrs[i] = &mail.Address{Address: a}
	}
	h.SetAddressList("To", addrs)
	return h
}

// WriteTo writes the header block, terminated by an empty line.
func (d Draft) WriteTo(w io.Writer) error {
	h := d.Header()
	if err := textproto.WriteHeader(w, h.Header.Header); err != nil {
		return fmt.Errorf("writing draft header: %w", err)
	}
	return nil
}

// ParseContacts reads one contact per line. Lines may be a bare address
// or an RFC 5322 mailbox such as "Ada <ada@example.com>". Blank lines and
// lines starting with '#' are skipped; lines that do not parse as a
// mailbox are kept verbatim as the address.
func ParseContacts(r io.Reader) ([]model.Contact, error) {
	var contacts []model.Contact

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		addr, err := mail.ParseAddress(line)
		if err != nil {
			contacts = append(contacts, model.Contact{Address: line})
			continue
		}
		contacts = append(contacts, model.Contact{
			Address: addr.Address,
			Name:    addr.Name,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}

	return contacts, nil
}
