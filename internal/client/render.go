package client

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-reward-keeper/internal/adapter"
	"github.com/MKhiriev/go-reward-keeper/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	totalStyle = lipgloss.NewStyle().Bold(true).PaddingTop(1)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderResult(result models.RewardResult, serverVersion string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Year", "Month", "Points")

	for _, reward := range result.MonthlyRewards {
		t.Row(strconv.Itoa(reward.Year), monthName(reward.Month), strconv.Itoa(reward.Points))
	}

	title := "Reward summary"
	if serverVersion != "" {
		title += " (server " + serverVersion + ")"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		t.String(),
		totalStyle.Render("Total points: "+strconv.Itoa(result.TotalPoints)),
	)
}

func renderError(err error) string {
	var b strings.Builder

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		b.WriteString(apiErr.Message)
		if apiErr.CorrelationID != "" {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("correlation id: " + apiErr.CorrelationID))
		}
	} else {
		b.WriteString(err.Error())
	}

	return errorBox.Render(b.String())
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return time.Month(month).String()
}
