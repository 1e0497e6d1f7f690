package emails

import (
	"fmt"
	"strconv"
	"time"
)

func rupees(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', 2, 64)
}

func qrBlock(qrDataURI string) string {
	if qrDataURI == "" {
		return ""
	}
	return fmt.Sprintf(`<img class="qr" src="%s" alt="Verification QR code" />`, qrDataURI)
}

// DonationReceipt is sent once a donation is completed.
type DonationReceipt struct {
	DonorName     string
	DonorEmail    string
	Amount        float64
	ReceiptNumber string
	PaymentID     string
	Date          time.Time
	Is80GEligible bool
	QRDataURI     string
}

func (d DonationReceipt) Message() Message {
	eligibility := ""
	if d.Is80GEligible {
		eligibility = "<p>This donation is eligible for 80G tax benefits.</p>"
	}
	payment := ""
	if d.PaymentID != "" {
		payment = fmt.Sprintf("<p><strong>Payment ID:</strong> %s</p>", EscapeHTML(d.PaymentID))
	}
	content := fmt.Sprintf(`
    <h2>Thank You for Your Donation!</h2>
    <p>Dear %s,</p>
    <p>We have received your generous donation of %s.</p>
    <p><strong>Receipt Number:</strong> %s</p>
    %s
    <p><strong>Date:</strong> %s</p>
    %s
    %s
    <p>Scan this QR code to verify your receipt.</p>
    <p>Thank you for supporting %s!</p>
`, EscapeHTML(d.DonorName), rupees(d.Amount), EscapeHTML(d.ReceiptNumber), payment,
		d.Date.Format("02 Jan 2006"), eligibility, qrBlock(d.QRDataURI), orgName)
	return Message{
		To:      d.DonorEmail,
		ToName:  d.DonorName,
		Subject: "Donation Receipt - NVP Welfare Foundation",
		HTML:    EmailLayout(content),
	}
}

// CertificateIssued notifies the recipient of a new certificate.
type CertificateIssued struct {
	RecipientName     string
	RecipientEmail    string
	CertificateNumber string
	CertificateType   string
	QRDataURI         string
}

func (c CertificateIssued) Message() Message {
	content := fmt.Sprintf(`
    <h2>Certificate Issued</h2>
    <p>Dear %s,</p>
    <p>Your certificate has been issued successfully.</p>
    <p><strong>Certificate Number:</strong> %s</p>
    <p><strong>Type:</strong> %s</p>
    %s
    <p>You can download your certificate from your dashboard.</p>
`, EscapeHTML(c.RecipientName), EscapeHTML(c.CertificateNumber), EscapeHTML(c.CertificateType), qrBlock(c.QRDataURI))
	return Message{
		To:      c.RecipientEmail,
		ToName:  c.RecipientName,
		Subject: "Certificate Issued - NVP Welfare Foundation",
		HTML:    EmailLayout(content),
	}
}

// ReceiptIssued is sent for admin-generated receipts.
type ReceiptIssued struct {
	RecipientName  string
	RecipientEmail string
	ReceiptNumber  string
	ReceiptType    string
	Amount         float64
	Description    string
	QRDataURI      string
}

func (r ReceiptIssued) Message() Message {
	content := fmt.Sprintf(`
    <h2>Receipt - %s</h2>
    <p>Dear %s,</p>
    <p><strong>Receipt Number:</strong> %s</p>
    <p><strong>Type:</strong> %s</p>
    <p><strong>Amount:</strong> %s</p>
    <p><strong>Description:</strong> %s</p>
    %s
`, orgName, EscapeHTML(r.RecipientName), EscapeHTML(r.ReceiptNumber), EscapeHTML(r.ReceiptType),
		rupees(r.Amount), EscapeHTML(r.Description), qrBlock(r.QRDataURI))
	return Message{
		To:      r.RecipientEmail,
		ToName:  r.RecipientName,
		Subject: "Receipt - " + r.ReceiptNumber,
		HTML:    EmailLayout(content),
	}
}

// EnquiryReceived is the auto-reply to a public enquiry.
type EnquiryReceived struct {
	Name    string
	Email   string
	Content string
}

func (e EnquiryReceived) Message() Message {
	content := fmt.Sprintf(`
    <h2>Thank You for Your Enquiry!</h2>
    <p>Dear %s,</p>
    <p>We have received your enquiry and will get back to you soon.</p>
    <p>Your message: %s</p>
`, EscapeHTML(e.Name), EscapeHTML(e.Content))
	return Message{
		To:      e.Email,
		ToName:  e.Name,
		Subject: "Enquiry Received - NVP Welfare Foundation",
		HTML:    EmailLayout(content),
	}
}

// MembershipDecision covers both approval and rejection of a registration.
type MembershipDecision struct {
	Name     string
	Email    string
	Approved bool
}

func (m MembershipDecision) Message() Message {
	if m.Approved {
		content := fmt.Sprintf(`
    <h2>Membership Approved</h2>
    <p>Dear %s,</p>
    <p>Your membership has been <strong>approved</strong>. Congratulations, you can now access the member dashboard.</p>
`, EscapeHTML(m.Name))
		return Message{
			To:      m.Email,
			ToName:  m.Name,
			Subject: "Membership Approved - NVP Welfare Foundation",
			HTML:    EmailLayout(content),
		}
	}
	content := fmt.Sprintf(`
    <h2>Membership Request Update</h2>
    <p>Dear %s,</p>
    <p>We are sorry to inform you that your membership request has been <strong>rejected</strong>. For more details, please contact the admin.</p>
`, EscapeHTML(m.Name))
	return Message{
		To:      m.Email,
		ToName:  m.Name,
		Subject: "Membership Rejected - NVP Welfare Foundation",
		HTML:    EmailLayout(content),
	}
}
