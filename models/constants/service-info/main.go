package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Gohan MAF Stage Aggregator"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Gohan MAF stage aggregator API!"
	SERVICE_DESCRIPTION ServiceInfo = "Samples coding mutations per cancer stage from MAF files and reports them as a spreadsheet and chart."

	SERVICE_ARTIFACT    ServiceInfo = "gohan-maf"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("ca.c3g.bento:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
