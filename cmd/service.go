package cmd

import (
	"strings"

	"nimbus-ctl/aws"
)

// ServiceCommand is one of the fixed per-service operations. Constants
// are declared in palette order, grouped by service, so ForService can
// walk the table in declaration order.
type ServiceCommand int

const (
	// EC2
	ListInstances ServiceCommand = iota
	CreateInstance
	StartInstance
	StopInstance
	RebootInstance
	TerminateInstance
	DescribeInstance
	// S3
	ListBuckets
	CreateBucket
	DeleteBucket
	GetBucketInfo
	ListObjects
	UploadObject
	DownloadObject
	// RDS
	ListDatabases
	StartDatabase
	StopDatabase
	RebootDatabase
	DescribeDatabase
	CreateSnapshot
	RestoreSnapshot
	// IAM
	ListUsers
	ListRoles
	CreateUser
	DeleteUser
	CreateRole
	DeleteRole
	AttachPolicy
	DetachPolicy
	// Secrets Manager
	ListSecrets
	CreateSecret
	UpdateSecret
	DeleteSecret
	DescribeSecret
	GetSecretValue
	// EKS
	ListClusters
	CreateCluster
	DeleteCluster
	DescribeCluster
	UpdateKubeconfig
	ListNodeGroups

	serviceCommandCount
)

// Verb synonym sets shared across services for keyword matching.
var (
	startVerbs     = []string{"start", "run", "launch"}
	stopVerbs      = []string{"stop", "halt", "shutdown"}
	rebootVerbs    = []string{"reboot", "restart", "reset"}
	terminateVerbs = []string{"terminate", "destroy", "delete"}
	createVerbs    = []string{"create", "new", "add"}
	deleteVerbs    = []string{"delete", "remove", "destroy"}
	listVerbs      = []string{"list", "show", "view"}
)

type serviceCommandSpec struct {
	name             string
	menuName         string // palette name when it differs from name; IDs always derive from name
	description      string
	service          aws.ServiceType
	requiresResource bool
	destructive      bool
	verbs            []string
	noun             string // shown in the "No X selected" error for gated commands
	result           string // success notification text
}

// The single source of truth for every service command: display
// strings, owning service, resource requirement, destructiveness,
// keyword verbs, and outcome messages all live in one entry so the
// tables cannot drift.
var serviceCommandSpecs = [serviceCommandCount]serviceCommandSpec{
	ListInstances: {name: "List Instances", menuName: "List EC2 Instances",
		description: "List all EC2 instances in the current region", service: aws.EC2,
		verbs: listVerbs, result: "EC2 instances listed successfully"},
	CreateInstance: {name: "Create Instance", menuName: "Create EC2 Instance",
		description: "Launch a new EC2 instance", service: aws.EC2,
		verbs: createVerbs, result: "EC2 instance creation initiated"},
	StartInstance: {name: "Start Instance", description: "Start the selected EC2 instance", service: aws.EC2,
		requiresResource: true, verbs: startVerbs, noun: "EC2 instance", result: "EC2 instance start initiated"},
	StopInstance: {name: "Stop Instance", description: "Stop the selected EC2 instance", service: aws.EC2,
		requiresResource: true, verbs: stopVerbs, noun: "EC2 instance", result: "EC2 instance stop initiated"},
	RebootInstance: {name: "Reboot Instance", description: "Reboot the selected EC2 instance", service: aws.EC2,
		requiresResource: true, verbs: rebootVerbs, noun: "EC2 instance", result: "EC2 instance reboot initiated"},
	TerminateInstance: {name: "Terminate Instance", description: "Terminate the selected EC2 instance", service: aws.EC2,
		requiresResource: true, destructive: true, verbs: terminateVerbs, noun: "EC2 instance", result: "EC2 instance termination initiated"},
	DescribeInstance: {name: "Describe Instance", description: "Show details of the selected instance", service: aws.EC2,
		requiresResource: true, noun: "EC2 instance", result: "EC2 instance details retrieved"},

	ListBuckets: {name: "List Buckets", menuName: "List S3 Buckets",
		description: "List all S3 buckets in the current account", service: aws.S3,
		verbs: listVerbs, result: "S3 buckets listed successfully"},
	CreateBucket: {name: "Create Bucket", menuName: "Create S3 Bucket",
		description: "Create a new S3 bucket", service: aws.S3,
		verbs: createVerbs, result: "S3 bucket creation initiated"},
	DeleteBucket: {name: "Delete Bucket", description: "Delete the selected S3 bucket", service: aws.S3,
		requiresResource: true, destructive: true, verbs: deleteVerbs, noun: "S3 bucket", result: "S3 bucket deletion initiated"},
	GetBucketInfo: {name: "Get Bucket Info", description: "Show details of the selected bucket", service: aws.S3,
		requiresResource: true, noun: "S3 bucket", result: "S3 bucket info retrieved"},
	ListObjects: {name: "List Objects", description: "List objects in the selected bucket", service: aws.S3,
		requiresResource: true, noun: "S3 bucket", result: "S3 objects listed successfully"},
	UploadObject: {name: "Upload Object", description: "Upload an object to the selected bucket", service: aws.S3,
		requiresResource: true, noun: "S3 bucket", result: "S3 object upload initiated"},
	DownloadObject: {name: "Download Object", description: "Download the selected object", service: aws.S3,
		result: "S3 object download initiated"},

	ListDatabases: {name: "List Databases", menuName: "List RDS Databases",
		description: "List all RDS database instances", service: aws.RDS,
		verbs: listVerbs, result: "RDS databases listed successfully"},
	StartDatabase: {name: "Start Database", description: "Start the selected RDS instance", service: aws.RDS,
		requiresResource: true, verbs: startVerbs, noun: "RDS database", result: "RDS database start initiated"},
	StopDatabase: {name: "Stop Database", description: "Stop the selected RDS instance", service: aws.RDS,
		requiresResource: true, verbs: stopVerbs, noun: "RDS database", result: "RDS database stop initiated"},
	RebootDatabase: {name: "Reboot Database", description: "Reboot the selected RDS instance", service: aws.RDS,
		requiresResource: true, verbs: rebootVerbs, noun: "RDS database", result: "RDS database reboot initiated"},
	DescribeDatabase: {name: "Describe Database", description: "Show details of the selected database", service: aws.RDS,
		requiresResource: true, noun: "RDS database", result: "RDS database details retrieved"},
	CreateSnapshot: {name: "Create Snapshot", description: "Create a snapshot of the selected database", service: aws.RDS,
		requiresResource: true, noun: "RDS database", result: "RDS snapshot creation initiated"},
	RestoreSnapshot: {name: "Restore Snapshot", description: "Restore database from snapshot", service: aws.RDS,
		result: "RDS snapshot restoration initiated"},

	ListUsers: {name: "List Users", description: "List all IAM users", service: aws.IAM,
		verbs: listVerbs, result: "IAM users listed successfully"},
	ListRoles: {name: "List Roles", description: "List all IAM roles", service: aws.IAM,
		verbs: listVerbs, result: "IAM roles listed successfully"},
	CreateUser: {name: "Create User", description: "Create a new IAM user", service: aws.IAM,
		verbs: createVerbs, result: "IAM user creation initiated"},
	DeleteUser: {name: "Delete User", description: "Delete the selected IAM user", service: aws.IAM,
		requiresResource: true, destructive: true, verbs: deleteVerbs, noun: "IAM user", result: "IAM user deletion initiated"},
	CreateRole: {name: "Create Role", description: "Create a new IAM role", service: aws.IAM,
		verbs: createVerbs, result: "IAM role creation initiated"},
	DeleteRole: {name: "Delete Role", description: "Delete the selected IAM role", service: aws.IAM,
		requiresResource: true, destructive: true, verbs: deleteVerbs, noun: "IAM role", result: "IAM role deletion initiated"},
	AttachPolicy: {name: "Attach Policy", description: "Attach policy to user or role", service: aws.IAM,
		requiresResource: true, noun: "IAM resource", result: "IAM policy attachment initiated"},
	DetachPolicy: {name: "Detach Policy", description: "Detach policy from user or role", service: aws.IAM,
		requiresResource: true, noun: "IAM resource", result: "IAM policy detachment initiated"},

	ListSecrets: {name: "List Secrets", description: "List all secrets in Secrets Manager", service: aws.Secrets,
		verbs: listVerbs, result: "Secrets listed successfully"},
	CreateSecret: {name: "Create Secret", description: "Create a new secret in Secrets Manager", service: aws.Secrets,
		verbs: createVerbs, result: "Secret creation initiated"},
	UpdateSecret: {name: "Update Secret", description: "Update the selected secret", service: aws.Secrets,
		requiresResource: true, noun: "secret", result: "Secret update initiated"},
	DeleteSecret: {name: "Delete Secret", description: "Delete the selected secret", service: aws.Secrets,
		requiresResource: true, destructive: true, verbs: deleteVerbs, noun: "secret", result: "Secret deletion initiated"},
	DescribeSecret: {name: "Describe Secret", description: "Show details of the selected secret", service: aws.Secrets,
		requiresResource: true, noun: "secret", result: "Secret details retrieved"},
	GetSecretValue: {name: "Get Secret Value", description: "Retrieve the secret value", service: aws.Secrets,
		requiresResource: true, noun: "secret", result: "Secret value retrieved"},

	ListClusters: {name: "List Clusters", menuName: "List EKS Clusters",
		description: "List all EKS clusters in the current region", service: aws.EKS,
		verbs: listVerbs, result: "EKS clusters listed successfully"},
	CreateCluster: {name: "Create Cluster", menuName: "Create EKS Cluster",
		description: "Create a new EKS cluster", service: aws.EKS,
		verbs: createVerbs, result: "EKS cluster creation initiated"},
	DeleteCluster: {name: "Delete Cluster", description: "Delete the selected EKS cluster", service: aws.EKS,
		requiresResource: true, destructive: true, verbs: deleteVerbs, noun: "EKS cluster", result: "EKS cluster deletion initiated"},
	DescribeCluster: {name: "Describe Cluster", description: "Show details of the selected cluster", service: aws.EKS,
		requiresResource: true, noun: "EKS cluster", result: "EKS cluster details retrieved"},
	UpdateKubeconfig: {name: "Update Kubeconfig", description: "Update kubeconfig for the cluster", service: aws.EKS,
		requiresResource: true, noun: "EKS cluster", result: "Kubeconfig update initiated"},
	ListNodeGroups: {name: "List Node Groups", description: "List node groups in the cluster", service: aws.EKS,
		requiresResource: true, noun: "EKS cluster", result: "EKS node groups listed successfully"},
}

func (s ServiceCommand) spec() serviceCommandSpec {
	if s < 0 || s >= serviceCommandCount {
		return serviceCommandSpec{name: "Unknown", description: "Unknown command"}
	}
	return serviceCommandSpecs[s]
}

// DisplayName returns the palette entry name. A few list and create
// commands qualify it with the service so the entry reads unambiguously
// outside a resource context.
func (s ServiceCommand) DisplayName() string {
	sp := s.spec()
	if sp.menuName != "" {
		return sp.menuName
	}
	return sp.name
}

// Description returns the palette help text.
func (s ServiceCommand) Description() string {
	return s.spec().description
}

// Service returns the owning service.
func (s ServiceCommand) Service() aws.ServiceType {
	return s.spec().service
}

// RequiresResource reports whether the command operates on a selected
// resource.
func (s ServiceCommand) RequiresResource() bool {
	return s.spec().requiresResource
}

// Destructive reports whether the command should be confirmed before
// execution when confirmation is enabled.
func (s ServiceCommand) Destructive() bool {
	return s.spec().destructive
}

// ResourceNoun returns the noun used in the error shown when the
// command needs a selected resource and none is selected.
func (s ServiceCommand) ResourceNoun() string {
	return s.spec().noun
}

// ResultMessage returns the success notification text.
func (s ServiceCommand) ResultMessage() string {
	return s.spec().result
}

// Slug returns the lowercase identifier used in command IDs.
func (s ServiceCommand) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.spec().name), " ", "")
}

func (s ServiceCommand) String() string {
	return s.spec().name
}

// Keywords returns the search terms: the lowercased short name plus
// the command's verb synonyms. Qualified palette names match through
// the name field directly.
func (s ServiceCommand) Keywords() []string {
	sp := s.spec()
	keywords := make([]string, 0, 1+len(sp.verbs))
	keywords = append(keywords, strings.ToLower(sp.name))
	keywords = append(keywords, sp.verbs...)
	return keywords
}

// ForService returns the service's commands in palette order.
func ForService(service aws.ServiceType) []ServiceCommand {
	var out []ServiceCommand
	for c := ServiceCommand(0); c < serviceCommandCount; c++ {
		if serviceCommandSpecs[c].service == service {
			out = append(out, c)
		}
	}
	return out
}
