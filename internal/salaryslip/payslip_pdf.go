package salaryslip

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
)

func payslipLines(slip SalarySlip) []string {
	return []string{
		"Salary Slip",
		"",
		fmt.Sprintf("Employee Number: %s", slip.EmployeeNumber),
		fmt.Sprintf("Days Worked: %s", slip.DaysWorked.String()),
		fmt.Sprintf("Issued: %s", slip.CreatedAt.UTC().Format(time.DateOnly)),
		"",
		fmt.Sprintf("Basic Pay: %s", slip.BasicPay.StringFixed(2)),
		fmt.Sprintf("Grade Pay: %s", slip.GradePay.StringFixed(2)),
		fmt.Sprintf("Dearness Allowance: %s", slip.DearnessAllowance.StringFixed(2)),
		fmt.Sprintf("Dearness Pay: %s", slip.DearnessPay.StringFixed(2)),
		fmt.Sprintf("HRA: %s", slip.HRA.StringFixed(2)),
		fmt.Sprintf("Special Pay: %s", slip.SpecialPay.StringFixed(2)),
		fmt.Sprintf("Other Allowance: %s", slip.OtherAllowance.StringFixed(2)),
		"",
		fmt.Sprintf("Total: %s", slip.Total().StringFixed(2)),
	}
}

const (
	pageWidth   = 595
	pageHeight  = 842
	marginLeft  = 50
	firstLineY  = 800
	fontSize    = 12
	lineLeading = 16
)

// buildPayslipPDF writes a one-page PDF with one Helvetica text line per
// entry. Text is WinAnsi encoded.
func buildPayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Salary Slip"}
	}

	var stream bytes.Buffer
	fmt.Fprintf(&stream, "BT\n/F1 %d Tf\n%d TL\n%d %d Td\n", fontSize, lineLeading, marginLeft, firstLineY)
	for i, line := range lines {
		if i > 0 {
			stream.WriteString("T* ")
		}
		fmt.Fprintf(&stream, "(%s) Tj\n", pdfText(line))
	}
	stream.WriteString("ET")

	doc := &pdfDocument{}
	doc.add("<< /Type /Catalog /Pages 2 0 R >>")
	doc.add("<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	doc.add(fmt.Sprintf(
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		pageWidth, pageHeight,
	))
	doc.add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	doc.add(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", stream.Len(), stream.String()))

	return doc.bytes(), nil
}

// pdfDocument numbers objects from 1 in the order they are added.
type pdfDocument struct {
	objects []string
}

func (d *pdfDocument) add(body string) {
	d.objects = append(d.objects, body)
}

func (d *pdfDocument) bytes() []byte {
	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(d.objects))
	for i, body := range d.objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets)+1, xref)
	return out.Bytes()
}

// pdfText encodes v as a literal string body. Runes outside Windows-1252
// become '?'; bytes above 0x7E are written as octal escapes.
func pdfText(v string) string {
	var b strings.Builder
	for _, r := range v {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		switch {
		case c == '\\' || c == '(' || c == ')':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
