package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxBodyChars caps how much raw or failed response body is printed.
const maxBodyChars = 3000

var printer = message.NewPrinter(language.English)

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// shortID shows the first 8 characters of an entity id.
func shortID(id string) string {
	return truncate(id, 8)
}

// RenderSuccess writes the human-readable bootstrap summary: tenant,
// actors, organizations, property, payment method, then the completed
// steps in order.
func RenderSuccess(w io.Writer, o Outcome) {
	fmt.Fprintln(w, "✅ SUCCESS")
	fmt.Fprintf(w, "   Tenant: %s\n", o.TenantID)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   Actors:")
	for _, key := range sortedKeys(o.Actors) {
		actor := o.Actors[key]
		fmt.Fprintf(w, "     %s (%s) — %s — %s...\n",
			actor.Name, actor.Email, actor.Role, shortID(actor.ID))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   Organizations:")
	for _, key := range sortedKeys(o.Organizations) {
		org := o.Organizations[key]
		fmt.Fprintf(w, "     %s (%s) — %s...\n", org.Name, org.Type, shortID(org.ID))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "   Property: %s / %s — %s\n",
		o.Property.Title, o.Property.UnitNumber, formatPrice(o.Property.Price))
	fmt.Fprintf(w, "   Payment Method: %s (%d phases)\n",
		o.PaymentMethod.Name, o.PaymentMethod.Phases)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "   Steps (%d):\n", len(o.Steps))
	for i, s := range o.Steps {
		detail := ""
		if s.Detail != "" {
			detail = " — " + s.Detail
		}
		fmt.Fprintf(w, "     %d. ✅ %s%s\n", i+1, s.Step, detail)
	}
}

// RenderFailure writes the failure marker and the response body as
// indented JSON, truncated.
func RenderFailure(w io.Writer, rawBody string) {
	fmt.Fprintln(w, "❌ FAILED")

	var indented bytes.Buffer
	if err := json.Indent(&indented, []byte(rawBody), "", "  "); err != nil {
		fmt.Fprintln(w, truncate(rawBody, maxBodyChars))
		return
	}
	fmt.Fprintln(w, truncate(indented.String(), maxBodyChars))
}

// formatPrice renders a naira amount with thousands separators and no
// decimals, e.g. ₦500,000.
func formatPrice(price float64) string {
	return printer.Sprintf("₦%.0f", price)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
