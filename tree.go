package skelgen

// Node is one entry in a declarative layout tree. A directory holds either
// further directories (Dir) or a flat list of files (FileList), never both.
type Node interface {
	node()
}

// Entry pairs a directory name with the node describing its contents.
type Entry struct {
	Name  string
	Child Node
}

// Dir is an ordered set of named subdirectories.
type Dir []Entry

// FileList names the files to create directly inside the enclosing
// directory. An empty list declares an empty directory.
type FileList []string

func (Dir) node()      {}
func (FileList) node() {}

// DefaultLayout is the compiled-in project tree for the insider-terminator
// analysis platform. It is constructed fresh on every call so callers can
// never mutate the declaration out from under each other.
func DefaultLayout() Dir {
	return Dir{
		{Name: "core", Child: Dir{
			{Name: "govinfo", Child: FileList{
				"GovInfoTerminator.ts",
				"LegalProvision.ts",
				"ProvisionFetcher.ts",
			}},
			{Name: "analysis", Child: FileList{
				"TradeWindowAnalyzer.ts",
				"DisclosureTimeline.ts",
			}},
			{Name: "nlp", Child: FileList{
				"EntityExtractor.ts",
				"ProvisionClassifier.ts",
			}},
			{Name: "anomaly", Child: FileList{
				"AnomalyDetector.ts",
				"BaselineModel.ts",
			}},
			{Name: "evidence", Child: FileList{
				"EvidenceBuilder.ts",
				"EvidencePackage.ts",
			}},
		}},
		{Name: "ingestion", Child: Dir{
			{Name: "pdf", Child: FileList{"PdfExtractor.ts"}},
			{Name: "excel", Child: FileList{"ExcelProcessor.ts"}},
			{Name: "html", Child: FileList{"HtmlScraper.ts"}},
			{Name: "glamor", Child: FileList{"GlamorClient.ts"}},
		}},
		{Name: "proof", Child: Dir{
			{Name: "exporters", Child: FileList{
				"ReportExporter.ts",
				"CsvExporter.ts",
			}},
		}},
		{Name: "tests", Child: FileList{}},
		{Name: "deploy", Child: FileList{
			"deploy.sh",
			"run_pipeline.sh",
		}},
	}
}
