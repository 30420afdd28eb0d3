package entity

// TechnologyAreas は探索対象となる技術領域の固定リストです。
// 1回の実行で各領域が1度ずつ処理されます。
var TechnologyAreas = []string{
	"AI and ML", "Application Infrastructure and Software", "Augmented and Virtual Reality",
	"Blockchain", "Cloud Computing and Virtualization", "Computer Vision", "Cryptology",
	"Cybersecurity", "Data Science", "Digital Forensics", "Enterprise Business Technologies",
	"Hardware, Semiconductors, and Embedded", "Human Computer Interaction",
	"Identity Management and Authentication", "Internet of Things", "Location and Presence",
	"Material Science", "Mobility and End Points", "Natural Language Processing",
	"Next Generation Computing", "Operating Systems", "Quantum Technology",
	"Software Defined Infrastructure", "Unmanned Aerial Vehicles",
	"Wireless and Networking Technologies", "5G and 6G",
}

// IsTechnologyArea は指定された文字列が技術領域リストに含まれるかを返します。
func IsTechnologyArea(s string) bool {
	for _, a := range TechnologyAreas {
		if a == s {
			return true
		}
	}
	return false
}
