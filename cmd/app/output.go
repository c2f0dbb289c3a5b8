package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func printJSON(v any) error {
	b, err := jsonMarshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printKV(rows [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	_ = w.Flush()
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("no results")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func formatID(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatMaybeUint(v *uint) string {
	if v == nil {
		return "-"
	}
	return formatID(*v)
}

func formatMaybeString(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func printCases(items []domain.Case) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Code,
			item.Title,
			formatMaybeString(item.Description),
			formatTime(item.UpdatedAt),
		})
	}
	printTable([]string{"ID", "CODE", "TITLE", "DESCRIPTION", "UPDATED_AT"}, rows)
}

func printAudioFiles(items []domain.AudioFile) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			formatID(item.CaseID),
			item.FileName,
			fmt.Sprintf("%.1fs", item.Duration),
			item.Status,
			formatTime(item.CreatedAt),
		})
	}
	printTable([]string{"ID", "CASE_ID", "FILE_NAME", "DURATION", "STATUS", "CREATED_AT"}, rows)
}

func printSpeakers(items []domain.Speaker) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Name,
			formatMaybeString(item.Alias),
			formatMaybeString(item.Gender),
			formatMaybeString(item.AgeEstimate),
		})
	}
	printTable([]string{"ID", "NAME", "ALIAS", "GENDER", "AGE"}, rows)
}

func printVoiceSamples(items []domain.VoiceSample) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			formatID(item.SpeakerID),
			item.FileName,
			fmt.Sprintf("%.1fs", item.Duration),
			formatTime(item.CreatedAt),
		})
	}
	printTable([]string{"ID", "SPEAKER_ID", "FILE_NAME", "DURATION", "CREATED_AT"}, rows)
}

func printSegments(items []domain.TranscriptSegment) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			formatMaybeUint(item.SpeakerID),
			fmt.Sprintf("%.2f", item.StartTime),
			fmt.Sprintf("%.2f", item.EndTime),
			strconv.FormatBool(item.IsDeleted),
			item.Text,
		})
	}
	printTable([]string{"ID", "SPEAKER", "START", "END", "DELETED", "TEXT"}, rows)
}

func printAlertWords(items []domain.AlertWord) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Keyword,
			item.Category,
			formatMaybeString(item.Description),
		})
	}
	printTable([]string{"ID", "KEYWORD", "CATEGORY", "DESCRIPTION"}, rows)
}

func printReplacementWords(items []domain.ReplacementWord) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Original,
			item.Correct,
			item.Category,
		})
	}
	printTable([]string{"ID", "ORIGINAL", "CORRECT", "CATEGORY"}, rows)
}

func printNotifications(items []domain.Notification) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.NotificationType,
			item.Action,
			item.Title,
			strconv.FormatBool(item.IsRead),
			strconv.FormatBool(item.IsImportant),
			formatTime(item.CreatedAt),
		})
	}
	printTable([]string{"ID", "TYPE", "ACTION", "TITLE", "READ", "IMPORTANT", "AT"}, rows)
}

func printUser(item domain.PublicUser) {
	printKV([][2]string{
		{"id", formatID(item.ID)},
		{"name", item.Name},
		{"username", item.Username},
		{"email", item.Email},
		{"role", item.Role},
		{"active", strconv.FormatBool(item.IsActive)},
	})
}

func printUsers(items []domain.PublicUser) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Name,
			item.Username,
			item.Role,
			strconv.FormatBool(item.IsActive),
			formatTime(item.CreatedAt),
		})
	}
	printTable([]string{"ID", "NAME", "USERNAME", "ROLE", "ACTIVE", "CREATED_AT"}, rows)
}

func printActivity(items []domain.ActivityLog) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			formatID(item.ID),
			item.Action,
			item.TargetType,
			formatMaybeUint(item.TargetID),
			formatMaybeUint(item.UserID),
			formatTime(item.CreatedAt),
		})
	}
	printTable([]string{"ID", "ACTION", "TARGET_TYPE", "TARGET_ID", "USER", "AT"}, rows)
}
