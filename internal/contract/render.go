package contract

import (
	"fmt"
	"strings"
	"time"
)

func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// RenderMarkdown выводит договор в Markdown: секции как заголовки второго
// уровня, подсекции третьего, поля и положения жирным.
func RenderMarkdown(doc Document) string {
	var b strings.Builder

	b.WriteString("# " + doc.Title + "\n\n")
	fmt.Fprintf(&b, "**Project:** %s\n**Start Date:** %s\n**End Date:** %s\n\n",
		doc.Project, doc.StartDate, doc.EndDate)

	b.WriteString("**CREATOR**\n\n")
	for _, line := range doc.Creator {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n**CLIENT**\n\n")
	for _, line := range doc.Client {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	for _, section := range doc.Sections {
		b.WriteString("## " + section.Title + "\n\n")
		for _, item := range section.Items {
			switch item.Kind {
			case ItemField:
				fmt.Fprintf(&b, "**%s:** %s\n\n", item.Label, item.Text)
			case ItemBlock:
				fmt.Fprintf(&b, "**%s:**\n\n%s\n\n", item.Label, item.Text)
			case ItemSubsection:
				fmt.Fprintf(&b, "### %s\n\n%s\n\n", item.Label, item.Text)
			case ItemProvision:
				fmt.Fprintf(&b, "**%s**\n\n%s\n\n", item.Label, item.Text)
			default:
				b.WriteString(item.Text + "\n\n")
			}
		}
	}

	fmt.Fprintf(&b, "*Generated on %s*\n", formatDate(doc.GeneratedAt))

	return b.String()
}

// RenderText выводит договор плоским текстом для предпросмотра: заголовки
// секций капсом, без разметки.
func RenderText(doc Document) string {
	var b strings.Builder

	b.WriteString(strings.ToUpper(doc.Title) + "\n\n")
	fmt.Fprintf(&b, "Project: %s\nStart Date: %s\nEnd Date: %s\n\n",
		doc.Project, doc.StartDate, doc.EndDate)

	b.WriteString("CREATOR\n")
	for _, line := range doc.Creator {
		b.WriteString(line + "\n")
	}
	b.WriteString("\nCLIENT\n")
	for _, line := range doc.Client {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	for _, section := range doc.Sections {
		b.WriteString(strings.ToUpper(section.Title) + "\n\n")
		for _, item := range section.Items {
			switch item.Kind {
			case ItemField:
				fmt.Fprintf(&b, "%s: %s\n\n", item.Label, item.Text)
			case ItemBlock:
				fmt.Fprintf(&b, "%s:\n\n%s\n\n", item.Label, item.Text)
			case ItemSubsection, ItemProvision:
				fmt.Fprintf(&b, "%s\n\n%s\n\n", item.Label, item.Text)
			default:
				b.WriteString(item.Text + "\n\n")
			}
		}
	}

	fmt.Fprintf(&b, "Generated on %s\n", formatDate(doc.GeneratedAt))

	return b.String()
}
