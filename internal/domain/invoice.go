package domain

// Invoice is the stored metadata for one uploaded invoice document. The record
// is created once, read via listing, and deleted whole; there is no partial
// update. ImgLink always points at the blob uploaded for this record.
type Invoice struct {
	InvoiceID   string `json:"InvoiceId" dynamodbav:"InvoiceId"`
	UserName    string `json:"UserName" dynamodbav:"UserName"`
	Value       Money  `json:"Value" dynamodbav:"Value"`
	Date        string `json:"Date" dynamodbav:"Date"`
	Description string `json:"Description" dynamodbav:"Description"`
	Category    string `json:"Category" dynamodbav:"Category"`
	ImgLink     string `json:"ImgLink" dynamodbav:"ImgLink"`
	ITBMSUSD    Money  `json:"ITBMSUSD" dynamodbav:"ITBMSUSD"`
	Subtotal    Money  `json:"Subtotal" dynamodbav:"Subtotal"`
}

// Claims are the verified identity attributes the gateway layer attaches to a
// request. The dispatcher trusts them as already validated.
type Claims struct {
	Username string
	Email    string
}
