package model

import "cloud.google.com/go/civil"

// FileRecord is the root of a parsed BAI2 file.
type FileRecord struct {
	SenderID             string     `json:"sender_id"`
	ReceiverID           string     `json:"receiver_id"`
	CreationDate         civil.Date `json:"creation_date"`
	CreationTime         *Time      `json:"creation_time,omitempty"`
	FileID               string     `json:"file_id"`
	PhysicalRecordLength *int       `json:"physical_record_length,omitempty"`
	BlockSize            *int       `json:"block_size,omitempty"`
	VersionNumber        *int       `json:"version_number,omitempty"`
	Groups               []Group    `json:"groups"`
}

// TransactionCount counts the transactions of every account in the file.
func (f *FileRecord) TransactionCount() int {
	var n int
	for _, group := range f.Groups {
		for _, account := range group.Accounts {
			n += len(account.Transactions)
		}
	}
	return n
}
