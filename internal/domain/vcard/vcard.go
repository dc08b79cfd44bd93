// Package vcard exports a card as a vCard 3.0 contact.
package vcard

import (
	"bytes"
	"strings"

	"loopcard/internal/domain/entity"

	govcard "github.com/emersion/go-vcard"
	"github.com/pkg/errors"
)

const (
	// ContentType is the MIME type of the encoded contact.
	ContentType = "text/vcard; charset=utf-8"

	// ClickTarget is the target recorded when a visitor saves the contact.
	ClickTarget = "vcard.vcf"

	version = "3.0"
)

// Encode renders the public view of card. Empty optional fields are omitted.
func Encode(card *entity.Card) ([]byte, error) {
	vc := make(govcard.Card)
	vc.SetValue(govcard.FieldVersion, version)
	vc.SetValue(govcard.FieldFormattedName, card.FullName)
	vc.SetName(splitName(card.FullName))

	addValue(vc, govcard.FieldOrganization, card.BusinessName, nil)
	addValue(vc, govcard.FieldTitle, card.Role, nil)
	addValue(vc, govcard.FieldTelephone, card.Contact.Phone, govcard.Params{
		govcard.ParamType: {"WORK", "VOICE"},
	})
	addValue(vc, govcard.FieldEmail, card.Contact.Email, nil)
	addValue(vc, govcard.FieldURL, card.Contact.Website, nil)
	addValue(vc, govcard.FieldPhoto, card.ProfilePhoto, govcard.Params{
		govcard.ParamType: {"JPEG"},
	})

	var buf bytes.Buffer
	if err := govcard.NewEncoder(&buf).Encode(vc); err != nil {
		return nil, errors.Wrap(err, "encode vcard")
	}

	return buf.Bytes(), nil
}

// FileName derives the download name from the card holder's name.
func FileName(card *entity.Card) string {
	parts := strings.Fields(card.FullName)
	if len(parts) == 0 {
		return "contact.vcf"
	}

	return strings.Join(parts, "_") + ".vcf"
}

// splitName treats the last word as the family name.
func splitName(fullName string) *govcard.Name {
	parts := strings.Fields(fullName)
	name := &govcard.Name{}
	if len(parts) == 0 {
		return name
	}

	name.FamilyName = parts[len(parts)-1]
	name.GivenName = strings.Join(parts[:len(parts)-1], " ")

	return name
}

func addValue(vc govcard.Card, field, value string, params govcard.Params) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	vc.Add(field, &govcard.Field{Value: value, Params: params})
}
