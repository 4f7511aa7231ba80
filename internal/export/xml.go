// Package export renders employee lists into downloadable documents.
package export

import (
	"strconv"
	"strings"

	"github.com/UnknownOlympus/athena/internal/models"
)

// XMLFilename and XMLContentType describe the XML download.
const (
	XMLFilename    = "employees.xml"
	XMLContentType = "application/xml"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(value string) string {
	return xmlEscaper.Replace(value)
}

// EmployeesToXML renders employees as an <Employees> document with one <Employee> per record.
// An employee without a department still gets a <Department> element with empty children.
func EmployeesToXML(employees []models.Employee) string {
	var b strings.Builder

	b.WriteString("<Employees>\n")
	for _, e := range employees {
		var deptCode, deptDescription string
		if e.Department != nil {
			deptCode = e.Department.Code
			deptDescription = e.Department.Description
		}

		b.WriteString("  <Employee>\n")
		writeElement(&b, "Id", strconv.Itoa(e.ID))
		writeElement(&b, "Code", escapeXML(e.Code))
		writeElement(&b, "FirstName", escapeXML(e.FirstName))
		writeElement(&b, "LastName", escapeXML(e.LastName))
		writeElement(&b, "Email", escapeXML(e.Email))
		writeElement(&b, "Phone", escapeXML(e.Phone))
		writeElement(&b, "Address", escapeXML(e.Address))
		b.WriteString("    <Department>\n")
		b.WriteString("  ")
		writeElement(&b, "Code", escapeXML(deptCode))
		b.WriteString("  ")
		writeElement(&b, "Description", escapeXML(deptDescription))
		b.WriteString("    </Department>\n")
		b.WriteString("  </Employee>\n")
	}
	b.WriteString("</Employees>")

	return b.String()
}

// writeElement writes an already escaped value wrapped in the named tag.
func writeElement(b *strings.Builder, name, escaped string) {
	b.WriteString("    <")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(escaped)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")
}
