// Package reporting builds consolidated performance reports from the
// persisted daily metrics and renders them for download.
package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Export formats accepted by the export endpoint.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrUnsupportedFormat is returned for any export format other than
// csv or json.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExportResult carries a rendered report ready to be written to the
// response, with the headers the handler needs.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

type Service interface {
	GenerateReport(ctx context.Context, accountID int64, days int) (*domain.Report, error)
	ExportReport(ctx context.Context, accountID int64, days int, format string) (*ExportResult, error)
}

type service struct {
	accountRepo     repository.AccountRepository
	dailyMetricRepo repository.DailyMetricRepository
	nowFunc         func() time.Time
}

func NewService(
	accountRepo repository.AccountRepository,
	dailyMetricRepo repository.DailyMetricRepository,
) Service {
	return &service{
		accountRepo:     accountRepo,
		dailyMetricRepo: dailyMetricRepo,
		nowFunc:         time.Now,
	}
}

// GenerateReport aggregates the stored rows twice, by date and by
// campaign name, and derives the account-level summary from the
// campaign aggregates.
func (s *service) GenerateReport(ctx context.Context, accountID int64, days int) (*domain.Report, error) {
	metrics, err := s.loadMetrics(accountID, days)
	if err != nil {
		return nil, err
	}

	dailyGroups := aggregating.Fold(rowsByDate(metrics))
	campaignGroups := aggregating.Fold(rowsByCampaign(metrics))

	report := &domain.Report{
		DailyPerformance: make([]*domain.ReportRow, 0, len(dailyGroups)),
		Campaigns:        make([]*domain.ReportRow, 0, len(campaignGroups)),
		Summary:          summarize(campaignGroups),
		GeneratedAt:      s.nowFunc().UTC().Format(time.RFC3339),
		DateRange:        days,
	}

	for _, totals := range dailyGroups {
		report.DailyPerformance = append(report.DailyPerformance, &domain.ReportRow{
			Date:        totals.Key,
			Impressions: totals.Impressions,
			Clicks:      totals.Clicks,
			Cost:        totals.Cost,
			Conversions: totals.Conversions,
			Ctr:         totals.Ctr,
			Cpc:         totals.Cpc,
		})
	}

	for _, totals := range campaignGroups {
		report.Campaigns = append(report.Campaigns, &domain.ReportRow{
			Name:        totals.Key,
			Type:        totals.Type,
			Impressions: totals.Impressions,
			Clicks:      totals.Clicks,
			Cost:        totals.Cost,
			Conversions: totals.Conversions,
			Ctr:         totals.Ctr,
			Cpc:         totals.Cpc,
		})
	}

	return report, nil
}

// ExportReport renders the raw daily rows as a downloadable file. CSV
// is the dashboard's spreadsheet handoff; JSON wraps the same rows in
// an envelope with the export timestamp.
func (s *service) ExportReport(
	ctx context.Context,
	accountID int64,
	days int,
	format string,
) (*ExportResult, error) {
	if format != FormatCSV && format != FormatJSON {
		return nil, ErrUnsupportedFormat
	}

	metrics, err := s.loadMetrics(accountID, days)
	if err != nil {
		return nil, err
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "reporting: generating export id")
	}

	exportedAt := s.nowFunc().UTC()
	filename := fmt.Sprintf(
		"report_%d_%s_%s.%s",
		accountID, exportedAt.Format(time.DateOnly), suffix, format,
	)

	if format == FormatJSON {
		body, err := utils.Marshal(&domain.ReportExport{
			Data:       metrics,
			ExportedAt: exportedAt.Format(time.RFC3339),
			Format:     FormatJSON,
		})
		if err != nil {
			return nil, errors.Wrap(err, "reporting: encoding json export")
		}

		return &ExportResult{
			Filename:    filename,
			ContentType: "application/json",
			Body:        body,
		}, nil
	}

	body, err := renderCSV(metrics)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename:    filename,
		ContentType: "text/csv",
		Body:        body,
	}, nil
}

func (s *service) loadMetrics(accountID int64, days int) ([]*domain.DailyMetric, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: loading account")
	}
	if account == nil {
		return nil, insighting.ErrAccountNotFound
	}

	start, end := utils.RangeBounds(days, s.nowFunc())

	metrics, err := s.dailyMetricRepo.GetByAccountAndRange(
		accountID,
		start.Format(time.DateOnly),
		end.Format(time.DateOnly),
	)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: reading daily metrics")
	}

	return metrics, nil
}

func rowsByDate(metrics []*domain.DailyMetric) []domain.MetricRow {
	rows := make([]domain.MetricRow, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, domain.MetricRow{
			Key:         m.Date,
			Date:        m.Date,
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Cost:        m.Cost,
			Ctr:         m.Ctr,
			Conversions: m.Conversions,
		})
	}
	return rows
}

func rowsByCampaign(metrics []*domain.DailyMetric) []domain.MetricRow {
	rows := make([]domain.MetricRow, 0, len(metrics))
	for _, m := range metrics {
		name := m.CampaignName
		if name == "" {
			name = m.CampaignID
		}

		rows = append(rows, domain.MetricRow{
			Key:         name,
			Name:        name,
			Type:        m.CampaignType,
			Date:        m.Date,
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Cost:        m.Cost,
			Ctr:         m.Ctr,
			Conversions: m.Conversions,
		})
	}
	return rows
}

// summarize derives the account totals plus the cross-campaign mean
// ratios: averageCTR is the mean over every campaign, averageCPC the
// mean over campaigns that spent on clicks.
func summarize(campaignGroups []*aggregating.Totals) *domain.ReportSummary {
	summary := &domain.ReportSummary{
		AverageCTR: aggregating.ZeroRatio,
		AverageCPC: aggregating.ZeroRatio,
	}

	var cost, ctrSum, cpcSum float64
	var cpcCount int

	for _, totals := range campaignGroups {
		summary.TotalImpressions += totals.Impressions
		summary.TotalClicks += totals.Clicks
		summary.TotalConversions += totals.Conversions
		cost += totals.Cost

		if totals.Impressions > 0 {
			ctrSum += float64(totals.Clicks) / float64(totals.Impressions) * 100
		}
		if totals.Clicks > 0 && totals.Cost > 0 {
			cpcSum += totals.Cost / float64(totals.Clicks)
			cpcCount++
		}
	}

	summary.TotalCost = utils.FormatTwoDecimal(cost)
	summary.TotalConversions = utils.RoundWithTwoDecimalPlace(summary.TotalConversions)

	if len(campaignGroups) > 0 {
		summary.AverageCTR = utils.FormatTwoDecimal(ctrSum / float64(len(campaignGroups)))
	}
	if cpcCount > 0 {
		summary.AverageCPC = utils.FormatTwoDecimal(cpcSum / float64(cpcCount))
	}

	return summary
}

func renderCSV(metrics []*domain.DailyMetric) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	header := []string{
		"date", "campaign_id", "campaign_name", "campaign_type",
		"impressions", "clicks", "ctr", "cost", "conversions",
	}
	if err := writer.Write(header); err != nil {
		return nil, errors.Wrap(err, "reporting: writing csv header")
	}

	for _, m := range metrics {
		record := []string{
			m.Date,
			m.CampaignID,
			m.CampaignName,
			m.CampaignType,
			strconv.FormatInt(m.Impressions, 10),
			strconv.FormatInt(m.Clicks, 10),
			utils.FormatTwoDecimal(m.Ctr),
			utils.FormatTwoDecimal(m.Cost),
			utils.FormatTwoDecimal(m.Conversions),
		}
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrap(err, "reporting: writing csv record")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "reporting: flushing csv")
	}

	return buf.Bytes(), nil
}
