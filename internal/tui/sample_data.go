package tui

// Mock app content shown in the preview screens.

type sampleJob struct {
	Title  string
	Client string
	Ref    string
	Date   string
	Time   string
}

type sampleCustomer struct {
	Name    string
	Initial string
}

type sampleFlow struct {
	Title    string
	Initial  string
	DateTime string
}

var sampleJobs = []sampleJob{
	{"Service Escalator", "Amuso Co Default - Amuso Co", "NHM-48293-AZ", "25/07", "11:00 - 11:30"},
	{"Inspect HVAC Unit", "Amonicos Co Default - Amonicos Co", "GTS-19022-HV", "25/07", "12:00 - 12:30"},
	{"Replace Damaged Wiring", "William Cowley, 97 Caldecote St, Newport", "MRH-67544-EL", "25/07", "13:00 - 13:30"},
	{"Test Fire Alarm System", "Default - Village Hotels", "CBR-23451-FA", "25/07", "14:00 - 14:30"},
	{"Calibrate Security Cameras", "54 Chelsea Square, London, SW3 6LH - Chelsea", "ODC-80801-CM", "25/07", "15:00 - 15:30"},
	{"Routine Elevator Maintenance", "Atenua Co Default - Atenua Co", "ATL-99338-ELV", "25/07", "16:00 - 16:30"},
}

var sampleCustomers = []sampleCustomer{
	{"[KD] Customer - No Sites", "K"},
	{"[KS] Kyle Scudder", "K"},
	{"a", "A"},
	{"A. Crimson Tide UK", "A"},
	{"A. Crimson Tide UK (A. )", "A"},
	{"A. Crimson Tide UK (A. )", "A"},
	{"AA", "A"},
	{"Acme Import Corp.", "A"},
	{"Acme Import Corp.", "C"},
}

var sampleFlows = []sampleFlow{
	{"[AG] Info Label", "A", "12/02/25 • 10:57"},
	{"[AG] Info Label", "A", "12/02/25 • 10:54"},
	{"[AG] Info Label", "A", "12/02/25 • 10:53"},
	{"[AG] Info Label", "A", "22/11/25 • 15:07"},
	{"[AG] Info Label", "A", "22/11/25 • 15:05"},
}

const (
	sampleFlowTitle     = "[AG] Info Label"
	sampleFlowCrumbs    = "Customers › … › AA. Heathervale House › CTUK_AA_1"
	sampleSectionTitle  = "[KD] Signature & Radio"
	sampleSectionDone   = "0/1"
	sampleSectionName   = "Section #1"
	sampleJobsBadge     = "8"
	sampleActionsBadge  = "0"
	sampleProfileLetter = "KD"
)

var sampleNavItems = []string{"Jobs", "Online Query", "Power BI", "Scheduled Actions", "Hub"}
