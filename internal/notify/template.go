package notify

import (
	"fmt"
	"strings"

	"github.com/flashspace/leads-api/internal/leads"
)

// renderLeadAlert builds the HTML body of the sales alert: hot-lead banner,
// contact table, optional quoted message, attribution table (or the
// no-attribution variant), the next-steps checklist and a footer carrying the
// lead id. Values are interpolated as-is; the mail goes to the internal sales
// inbox only.
func renderLeadAlert(sub *leads.Submission, leadID string) string {
	utm := sub.Attribution()

	var b strings.Builder
	b.WriteString(`<div style="font-family: 'Inter', -apple-system, 'Segoe UI', sans-serif; max-width: 650px; margin: 0 auto; background: #ffffff;">`)

	// Header
	b.WriteString(`<div style="background: linear-gradient(135deg, #FF6B35 0%, #FF8C42 50%, #FFA94D 100%); padding: 40px 30px; text-align: center;">
<div style="font-size: 48px; margin-bottom: 10px;">⚡</div>
<h1 style="margin: 0; font-size: 32px; font-weight: 700; color: #ffffff;">New Virtual Office Lead!</h1>
<p style="margin: 12px 0 0 0; color: rgba(255,255,255,0.95); font-size: 16px;">FlashSpace Landing Page</p>
</div>`)

	b.WriteString(`<div style="padding: 35px 30px;">`)

	// Hot-lead stats banner
	fmt.Fprintf(&b, `<div style="background: linear-gradient(135deg, #FFF4E6 0%%, #FFE5CC 100%%); border-radius: 12px; padding: 20px; margin-bottom: 30px; border-left: 4px solid #FF6B35;">
<table style="width: 100%%; text-align: center;"><tr>
<td><div style="font-size: 24px; font-weight: 700; color: #FF6B35;">🔥 HOT</div><div style="font-size: 12px; color: #666;">New Lead</div></td>
<td style="border-left: 2px solid #FFD4B3; border-right: 2px solid #FFD4B3;"><div style="font-size: 20px; font-weight: 700; color: #FF6B35;">%s</div><div style="font-size: 12px; color: #666;">Location</div></td>
<td><div style="font-size: 20px; font-weight: 700; color: #FF6B35;">%s</div><div style="font-size: 12px; color: #666;">Source</div></td>
</tr></table>
</div>`, sub.City, orDefault(utm.Source, "Direct"))

	// Contact details
	fmt.Fprintf(&b, `<div style="background: #ffffff; border: 2px solid #FFF0E5; border-radius: 12px; padding: 28px; margin-bottom: 25px;">
<h2 style="color: #2D3748; margin: 0 0 22px 0; font-size: 22px; font-weight: 700;">👤 Contact Details</h2>
<table style="width: 100%%; border-collapse: collapse;">
%s%s%s%s%s%s</table>
</div>`,
		contactRow("Full Name", sub.Name),
		contactRow("Email", fmt.Sprintf(`<a href="mailto:%s" style="color: #FF6B35; text-decoration: none; font-weight: 600;">%s</a>`, sub.Email, sub.Email)),
		contactRow("Phone", fmt.Sprintf(`<a href="tel:%s" style="color: #FF6B35; text-decoration: none; font-weight: 600;">%s</a>`, sub.Phone, sub.Phone)),
		contactRow("City", sub.City),
		contactRow("Company", sub.Company),
		contactRow("Submitted", sub.Timestamp),
	)

	b.WriteString(messageBlockHTML(sub.Message))
	b.WriteString(campaignValueHTML(utm.Campaign))
	b.WriteString(attributionHTML(utm))

	// Next steps checklist
	fmt.Fprintf(&b, `<div style="background: linear-gradient(135deg, #FFF9E6 0%%, #FFF3CC 100%%); border: 2px solid #FFD666; border-radius: 12px; padding: 25px; margin-top: 30px;">
<h3 style="color: #B7791F; margin: 0 0 18px 0; font-size: 20px; font-weight: 700;">⚡ Next Steps - Act Fast!</h3>
<ul style="margin: 0; padding-left: 24px; color: #6B5416; line-height: 2;">
<li><strong style="color: #B7791F;">📞 Call within 30 minutes</strong> for best conversion rate</li>
<li><strong style="color: #B7791F;">📧 Email follow-up</strong> with virtual office packages for %s</li>
<li><strong style="color: #B7791F;">💰 Send pricing</strong> for %s virtual office locations</li>
<li><strong style="color: #B7791F;">📅 Schedule</strong> a video call to explain the process</li>
</ul>
</div>`, sub.City, sub.City)

	b.WriteString(`</div>`)

	// Footer with the email-side lead id
	fmt.Fprintf(&b, `<div style="background: linear-gradient(135deg, #2D3748 0%%, #1A202C 100%%); padding: 30px; text-align: center;">
<span style="color: #FF6B35; font-size: 24px; font-weight: 700;">⚡ FlashSpace</span>
<p style="margin: 12px 0 5px 0; color: #A0AEC0; font-size: 14px;">New lead from FlashSpace Virtual Office Landing Page</p>
<p style="margin: 5px 0 0 0; color: #718096; font-size: 13px;">Lead ID: <span style="color: #FF6B35; font-weight: 600;">%s</span></p>
</div>`, leadID)

	b.WriteString(`</div>`)
	return b.String()
}

func contactRow(label, value string) string {
	return fmt.Sprintf(`<tr><td style="padding: 14px 0; border-bottom: 1px solid #E2E8F0; font-weight: 600; color: #4A5568; width: 35%%;"><span style="color: #FF6B35; margin-right: 8px;">●</span>%s</td><td style="padding: 14px 0; border-bottom: 1px solid #E2E8F0; color: #2D3748; font-weight: 500;">%s</td></tr>
`, label, value)
}

// messageBlockHTML renders the quoted customer message, or nothing when the
// form sent none.
func messageBlockHTML(message string) string {
	if message == "" {
		return ""
	}
	return fmt.Sprintf(`<div style="background: linear-gradient(135deg, #E6F7FF 0%%, #CCE7FF 100%%); border-left: 5px solid #1890FF; border-radius: 12px; padding: 25px; margin: 25px 0;">
<h3 style="color: #1890FF; margin: 0 0 15px 0; font-size: 18px; font-weight: 700;">💬 Customer Message</h3>
<p style="margin: 0; color: #2D3748; line-height: 1.7; font-size: 15px; font-style: italic; background: white; padding: 18px; border-radius: 8px;">"%s"</p>
</div>`, message)
}

// campaignValueHTML renders the estimated-value callout for campaign traffic.
func campaignValueHTML(campaign string) string {
	if campaign == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="background: #d4edda; color: #155724; padding: 10px; border-radius: 5px; margin: 10px 0;"><strong>💰 Estimated Lead Value:</strong> ₹2,500 (Based on campaign: %s)</p>`, campaign)
}

// attributionHTML renders the full UTM table when any attribution field was
// captured and the direct-visit variant otherwise. The branch is on the whole
// record, not per field.
func attributionHTML(utm *leads.Attribution) string {
	if utm.Empty() {
		return `<h3 style="color: #6c757d; margin-top: 30px; padding-top: 20px; border-top: 2px solid #eee;">📊 Marketing Tracking</h3>
<div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
<p style="color: #6c757d; margin: 0;"><strong>Source:</strong> Direct Visit (No UTM parameters)</p>
</div>`
	}

	rows := []struct {
		label, value string
	}{
		{"Campaign", orDefault(utm.Campaign, "Direct Visit")},
		{"Source", orDefault(utm.Source, "Direct")},
		{"Medium", orDefault(utm.Medium, "None")},
		{"Keyword", orDefault(utm.Term, "N/A")},
		{"Ad Content", orDefault(utm.Content, "N/A")},
		{"Google Click ID", orDefault(utm.GCLID, "N/A")},
		{"Landing Page", orDefault(utm.LandingPage, "N/A")},
		{"Referrer", orDefault(utm.Referrer, "Direct Visit")},
	}

	var b strings.Builder
	b.WriteString(`<h3 style="color: #4A90E2; margin-top: 30px; padding-top: 20px; border-top: 2px solid #eee;">📊 Marketing Tracking Data</h3>
<div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
<table style="width: 100%; border-collapse: collapse; font-family: Arial, sans-serif;">
`)
	for i, row := range rows {
		bg := ""
		if i%2 == 0 {
			bg = ` style="background: #e9ecef;"`
		}
		fmt.Fprintf(&b, `<tr%s><td style="padding: 12px 15px; border: 1px solid #dee2e6; font-weight: bold; color: #495057;">%s</td><td style="padding: 12px 15px; border: 1px solid #dee2e6; color: #6c757d;">%s</td></tr>
`, bg, row.label, row.value)
	}
	b.WriteString(`</table>
</div>`)
	return b.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
