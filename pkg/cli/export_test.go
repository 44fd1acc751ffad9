package cli

var LogReportSummary = logReportSummary
